package handler

import (
	"fmt"
	"net/http"

	"github.com/content-services/domain-sync-backend/pkg/clients/registry_client"
	"github.com/content-services/domain-sync-backend/pkg/domainname"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/labstack/echo/v4"
)

type RegistryHandler struct {
	Client registry_client.RegistryClient
}

func RegisterRegistryRoutes(engine *echo.Group, client registry_client.RegistryClient) {
	if engine == nil {
		panic("engine is nil")
	}
	if client == nil {
		panic("client is nil")
	}

	h := RegistryHandler{Client: client}
	engine.GET("/registry/status", h.testConnection)
	engine.GET("/registry/domains/:domain", h.checkDomain)
}

// TestConnection godoc
// @Summary      Registry Status
// @ID           registryStatus
// @Description  Check that the remote registry answers and summarize the configured site
// @Tags         registry
// @Produce      json
// @Success      200 {object} api.RegistryConnectionResponse
// @Router       /registry/status [get]
func (h *RegistryHandler) testConnection(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Client.TestConnection(c.Request().Context()))
}

// CheckDomain godoc
// @Summary      Check Domain
// @ID           checkDomain
// @Tags         registry
// @Param        domain path string true "Domain to look up"
// @Produce      json
// @Success      200 {object} api.DomainCheckResponse
// @Failure      400 {object} ce.ErrorResponse
// @Failure      502 {object} ce.ErrorResponse
// @Router       /registry/domains/{domain} [get]
func (h *RegistryHandler) checkDomain(c echo.Context) error {
	domain := c.Param("domain")
	if !domainname.IsValidFormat(domain) {
		return ce.NewErrorResponse(http.StatusBadRequest, "Error checking domain", fmt.Sprintf("Invalid domain format: %q", domain))
	}

	response, err := h.Client.CheckDomain(c.Request().Context(), domainname.Normalize(domain))
	if err != nil {
		err = ce.NewSyncError(ce.RemoteUnavailable, "failed to check domain", err)
		return ce.NewErrorResponse(ce.HttpCodeForError(err), "Error checking domain", err.Error())
	}
	return c.JSON(http.StatusOK, response)
}
