package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/clients/registry_client"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	"github.com/content-services/domain-sync-backend/pkg/db"
	"github.com/content-services/domain-sync-backend/pkg/instrumentation"
	"github.com/content-services/domain-sync-backend/pkg/middleware"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const DefaultOffset = 0
const DefaultLimit = 100
const DefaultStatus = ""
const MaxLimit = 200

// nolint: lll
// @title DomainSyncBackend
// @version  v1.0.0
// @description Keeps an organization's custom domains consistent with the remote hosting registry
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0
// @Host api.example.com
// @BasePath /api/domain-sync/v1.0/
// @securityDefinitions.apikey RhIdentity
// @in header
// @name x-rh-identity

func RegisterRoutes(ctx context.Context, engine *echo.Echo, metrics *instrumentation.Metrics) {
	daoReg := dao.GetDaoRegistry(db.DB)
	client := registry_client.NewClient(registry_client.OnRetry(metrics.RecordRegistryRetry))
	reconciler, err := reconcile.NewConfiguredReconciler(ctx, daoReg, client, metrics)
	if err != nil {
		panic(err)
	}

	paths := []string{api.FullRootPath(), api.MajorRootPath()}
	for i := 0; i < len(paths); i++ {
		group := engine.Group(paths[i])
		RegisterDomainRoutes(group, daoReg, reconciler)
		RegisterSyncRoutes(group, daoReg, reconciler)
		RegisterRegistryRoutes(group, client)
	}

	data, err := json.MarshalIndent(engine.Routes(), "", "  ")
	if err == nil {
		log.Debug().Msg(string(data))
	}
}

func RegisterPing(engine *echo.Echo) {
	engine.GET("/ping", ping)
	engine.GET("/ping/", ping)
}

func ping(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "pong",
	})
}

// getOwnerID returns the organization the request acts for
func getOwnerID(c echo.Context) string {
	return middleware.OwnerID(c.Request().Context())
}

func createLink(c echo.Context, offset int) string {
	req := c.Request()
	q := req.URL.Query()
	page := ParsePagination(c)

	q.Set("limit", strconv.Itoa(page.Limit))
	q.Set("offset", strconv.Itoa(offset))

	params, _ := url.PathUnescape(q.Encode())
	return fmt.Sprintf("%v?%v", req.URL.Path, params)
}

// setCollectionResponseMetadata determines metadata of collection response based on context and collection size.
// Returns collection response with updated metadata.
func setCollectionResponseMetadata(collection api.CollectionMetadataSettable, c echo.Context, totalCount int64) api.CollectionMetadataSettable {
	page := ParsePagination(c)
	var lastPage int
	if int(totalCount) > 0 && (int(totalCount)%page.Limit) == 0 {
		lastPage = int(totalCount) - page.Limit
	} else {
		lastPage = int(totalCount) - int(totalCount)%page.Limit
	}
	links := api.Links{
		First: createLink(c, 0),
		Last:  createLink(c, lastPage),
	}
	if page.Offset+page.Limit < int(totalCount) {
		links.Next = createLink(c, page.Offset+page.Limit)
	}
	if page.Offset-page.Limit >= 0 {
		links.Prev = createLink(c, page.Offset-page.Limit)
	}

	collection.SetMetadata(api.ResponseMetadata{
		Count:  totalCount,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, links)
	return collection
}

func ParsePagination(c echo.Context) api.PaginationData {
	pageData := api.PaginationData{Limit: DefaultLimit, Offset: DefaultOffset}
	err := echo.QueryParamsBinder(c).
		Int("limit", &pageData.Limit).
		Int("offset", &pageData.Offset).
		BindError()

	if err != nil {
		log.Error().Err(err).Msg("Failed to bind pagination.")
	}

	if pageData.Limit <= 0 {
		pageData.Limit = DefaultLimit
	}
	if pageData.Limit > MaxLimit {
		pageData.Limit = MaxLimit
	}
	if pageData.Offset < 0 {
		pageData.Offset = DefaultOffset
	}
	return pageData
}
