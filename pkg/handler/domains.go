package handler

import (
	"fmt"
	"net/http"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type DomainHandler struct {
	DaoRegistry dao.DaoRegistry
	Reconciler  reconcile.Reconciler
}

func RegisterDomainRoutes(engine *echo.Group, daoReg *dao.DaoRegistry, reconciler reconcile.Reconciler) {
	if engine == nil {
		panic("engine is nil")
	}
	if daoReg == nil {
		panic("daoReg is nil")
	}
	if reconciler == nil {
		panic("reconciler is nil")
	}

	h := DomainHandler{
		DaoRegistry: *daoReg,
		Reconciler:  reconciler,
	}
	engine.GET("/domains/", h.listDomains)
	engine.GET("/domains/:uuid", h.fetchDomain)
	engine.POST("/domains/", h.createDomain)
	engine.DELETE("/domains/:uuid", h.deleteDomain)
}

// ListDomains godoc
// @Summary      List Domains
// @ID           listDomains
// @Description  List the organization's domain records, newest first
// @Tags         domains
// @Param		 offset query int false "Offset into the list of results to return in the response"
// @Param		 limit query int false "Limit the number of items returned"
// @Param		 status query string false "Filter domains by status (pending, verified, error)"
// @Produce      json
// @Success      200 {object} api.DomainCollectionResponse
// @Failure      400 {object} ce.ErrorResponse
// @Failure      500 {object} ce.ErrorResponse
// @Router       /domains/ [get]
func (h *DomainHandler) listDomains(c echo.Context) error {
	ownerID := getOwnerID(c)
	pageData := ParsePagination(c)
	statusFilter := DefaultStatus
	err := echo.QueryParamsBinder(c).String("status", &statusFilter).BindError()
	if err != nil {
		log.Error().Err(err).Msg("Error parsing filters")
	}
	if statusFilter != DefaultStatus && !config.ValidDomainStatus(statusFilter) {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error listing domains", fmt.Sprintf("Invalid status filter %q", statusFilter))
	}

	domains, total, err := h.DaoRegistry.Domain.ListPaginated(c.Request().Context(), ownerID, pageData, statusFilter)
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForError(err), "Error listing domains", err.Error())
	}
	return c.JSON(http.StatusOK, setCollectionResponseMetadata(&domains, c, total))
}

// FetchDomain godoc
// @Summary      Get Domain
// @ID           getDomain
// @Tags         domains
// @Param        uuid path string true "Identifier of the domain record"
// @Produce      json
// @Success      200 {object} api.DomainResponse
// @Failure      404 {object} ce.ErrorResponse
// @Router       /domains/{uuid} [get]
func (h *DomainHandler) fetchDomain(c echo.Context) error {
	record, err := h.DaoRegistry.Domain.Fetch(c.Request().Context(), getOwnerID(c), c.Param("uuid"))
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForError(err), "Error fetching domain", err.Error())
	}
	var response api.DomainResponse
	dao.DomainModelToApiFields(record, &response)
	return c.JSON(http.StatusOK, response)
}

// CreateDomain godoc
// @Summary      Add Domain
// @ID           createDomain
// @Description  Record a domain and attach it to the remote site. A registry failure is reported on the returned record.
// @Tags         domains
// @Accept       json
// @Produce      json
// @Param        body body api.DomainRequest true "request body"
// @Success      201 {object} api.DomainResponse
// @Failure      400 {object} ce.ErrorResponse
// @Failure      500 {object} ce.ErrorResponse
// @Router       /domains/ [post]
func (h *DomainHandler) createDomain(c echo.Context) error {
	var request api.DomainRequest
	if err := c.Bind(&request); err != nil {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error binding parameters", err.Error())
	}
	if request.Domain == "" {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error adding domain", "domain is required")
	}

	response, err := h.Reconciler.AddDomain(c.Request().Context(), getOwnerID(c), request.Domain)
	if err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForError(err), "Error adding domain", err.Error())
	}
	c.Response().Header().Set("Location", c.Request().URL.Path+response.UUID)
	return c.JSON(http.StatusCreated, response)
}

// DeleteDomain godoc
// @Summary      Delete Domain
// @ID           deleteDomain
// @Description  Delete a domain record and detach it from the remote site
// @Tags         domains
// @Param        uuid path string true "Identifier of the domain record"
// @Success      204 "Domain was deleted"
// @Failure      404 {object} ce.ErrorResponse
// @Router       /domains/{uuid} [delete]
func (h *DomainHandler) deleteDomain(c echo.Context) error {
	if err := h.Reconciler.RemoveDomain(c.Request().Context(), getOwnerID(c), c.Param("uuid")); err != nil {
		return ce.NewErrorResponse(ce.HttpCodeForError(err), "Error deleting domain", err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
