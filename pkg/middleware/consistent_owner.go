package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// responseOrgIds collects org_id values found at the top level of a response
// or inside its data field
func responseOrgIds(response map[string]any) []string {
	var orgIds []string
	appendOrgId := func(item map[string]any) {
		if orgId, ok := item["org_id"].(string); ok && orgId != "" {
			orgIds = append(orgIds, orgId)
		}
	}

	appendOrgId(response)
	switch data := response["data"].(type) {
	case []any:
		for _, item := range data {
			if itemMap, ok := item.(map[string]any); ok {
				appendOrgId(itemMap)
			}
		}
	case map[string]any:
		appendOrgId(data)
	}
	return orgIds
}

// EnforceConsistentOrgId fails a request with 500 when a successful response
// carries a record owned by another organization than the caller's
func EnforceConsistentOrgId(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if SkipAuth(c) {
			return next(c)
		}
		ownerID := OwnerID(c.Request().Context())
		if ownerID == "" {
			return ce.NewErrorResponse(http.StatusBadRequest, "Missing org ID", "Organization ID is required")
		}

		rec := httptest.NewRecorder()
		original := c.Response()
		c.SetResponse(echo.NewResponse(rec, c.Echo()))
		err := next(c)
		c.SetResponse(original)
		if err != nil {
			return err
		}

		if rec.Code == http.StatusOK && rec.Body.Len() != 0 {
			var response map[string]any
			if jsonErr := json.Unmarshal(rec.Body.Bytes(), &response); jsonErr != nil {
				log.Ctx(c.Request().Context()).Warn().Err(jsonErr).Msg("Failed to parse response JSON for org_id validation")
			} else {
				for _, orgId := range responseOrgIds(response) {
					if orgId != ownerID {
						log.Ctx(c.Request().Context()).Error().Str("user_org_id", ownerID).Str("response_org_id", orgId).Msg("Org ID mismatch")
						return ce.NewErrorResponse(http.StatusInternalServerError, "Organization ID mismatch", "Response organization ID does not match user organization ID")
					}
				}
			}
		}

		for key, values := range rec.Header() {
			for _, value := range values {
				c.Response().Header().Add(key, value)
			}
		}
		c.Response().WriteHeader(rec.Code)
		_, err = c.Response().Write(rec.Body.Bytes())
		return err
	}
}
