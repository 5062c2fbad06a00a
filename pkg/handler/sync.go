package handler

import (
	"net/http"

	"github.com/content-services/domain-sync-backend/pkg/dao"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	"github.com/labstack/echo/v4"
)

type SyncHandler struct {
	DaoRegistry dao.DaoRegistry
	Reconciler  reconcile.Reconciler
}

func RegisterSyncRoutes(engine *echo.Group, daoReg *dao.DaoRegistry, reconciler reconcile.Reconciler) {
	if engine == nil {
		panic("engine is nil")
	}
	if daoReg == nil {
		panic("daoReg is nil")
	}
	if reconciler == nil {
		panic("reconciler is nil")
	}

	h := SyncHandler{
		DaoRegistry: *daoReg,
		Reconciler:  reconciler,
	}
	engine.POST("/domains/sync/", h.sync)
	engine.GET("/domains/sync/status", h.status)
	engine.GET("/domains/sync/audits/", h.listAudits)
}

// Sync godoc
// @Summary      Reconcile Domains
// @ID           syncDomains
// @Description  Bring the organization's domain records in line with the remote site. Per domain failures are listed in details.errors.
// @Tags         sync
// @Produce      json
// @Success      200 {object} api.SyncResult
// @Failure      409 {object} api.SyncResult
// @Failure      500 {object} api.SyncResult
// @Failure      502 {object} api.SyncResult
// @Router       /domains/sync/ [post]
func (h *SyncHandler) sync(c echo.Context) error {
	result, err := h.Reconciler.Reconcile(c.Request().Context(), getOwnerID(c))
	if err != nil {
		return c.JSON(ce.HttpCodeForError(err), result)
	}
	return c.JSON(http.StatusOK, result)
}

// SyncStatus godoc
// @Summary      Sync Status
// @ID           syncStatus
// @Tags         sync
// @Produce      json
// @Success      200 {object} api.SyncStatusResponse
// @Failure      502 {object} ce.ErrorResponse
// @Router       /domains/sync/status [get]
func (h *SyncHandler) status(c echo.Context) error {
	response, err := h.Reconciler.SyncStatus(c.Request().Context(), getOwnerID(c))
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForError(err), "Error computing sync status", err.Error())
	}
	return c.JSON(http.StatusOK, response)
}

// ListSyncAudits godoc
// @Summary      List Sync Audits
// @ID           listSyncAudits
// @Description  Recorded reconciliation runs, newest first
// @Tags         sync
// @Param		 offset query int false "Offset into the list of results to return in the response"
// @Param		 limit query int false "Limit the number of items returned"
// @Produce      json
// @Success      200 {object} api.SyncAuditCollectionResponse
// @Failure      500 {object} ce.ErrorResponse
// @Router       /domains/sync/audits/ [get]
func (h *SyncHandler) listAudits(c echo.Context) error {
	pageData := ParsePagination(c)
	audits, total, err := h.DaoRegistry.SyncAudit.List(c.Request().Context(), getOwnerID(c), pageData)
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForError(err), "Error listing sync audits", err.Error())
	}
	return c.JSON(http.StatusOK, setCollectionResponseMetadata(&audits, c, total))
}
