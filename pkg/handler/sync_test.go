package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/content-services/domain-sync-backend/pkg/api"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/reconcile"
	test_handler "github.com/content-services/domain-sync-backend/pkg/test/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SyncSuite struct {
	handlerSuite
}

func TestSyncSuite(t *testing.T) {
	suite.Run(t, new(SyncSuite))
}

func (suite *SyncSuite) TestSync() {
	t := suite.T()
	result := api.SyncResult{
		Success: true,
		Message: "Sync completed: 1 added, 0 updated, 0 errors",
		Details: &api.SyncDetails{Added: []string{"example.com"}, Updated: []string{}, Removed: []string{}, Errors: []string{}},
	}
	suite.mocks.reconciler.On("Reconcile", mock.Anything, test_handler.MockOrgId).Return(result, nil)

	code, body := suite.request(http.MethodPost, "/domains/sync/", nil)
	assert.Equal(t, http.StatusOK, code)
	response := api.SyncResult{}
	assert.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, result, response)
}

func (suite *SyncSuite) TestSyncPartialFailureIsOk() {
	t := suite.T()
	result := api.SyncResult{
		Success: false,
		Message: "Sync completed: 0 added, 0 updated, 1 errors",
		Details: &api.SyncDetails{Added: []string{}, Updated: []string{}, Removed: []string{}, Errors: []string{"example.com: failed"}},
	}
	suite.mocks.reconciler.On("Reconcile", mock.Anything, test_handler.MockOrgId).Return(result, nil)

	code, _ := suite.request(http.MethodPost, "/domains/sync/", nil)
	assert.Equal(t, http.StatusOK, code)
}

func (suite *SyncSuite) TestSyncErrors() {
	t := suite.T()
	cases := []struct {
		err  error
		code int
	}{
		{ce.NewSyncError(ce.RemoteUnavailable, "failed to fetch remote site info", errors.New("timeout")), http.StatusBadGateway},
		{ce.NewSyncError(ce.SyncInProgress, reconcile.MessageInProgress, nil), http.StatusConflict},
		{ce.NewSyncError(ce.LocalStoreError, "failed to list local domains", errors.New("gone")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.mocks = newRouterMocks(t)
		result := api.SyncResult{Success: false, Message: reconcile.MessageFailed, Error: tc.err.Error()}
		suite.mocks.reconciler.On("Reconcile", mock.Anything, test_handler.MockOrgId).Return(result, tc.err)

		code, body := suite.request(http.MethodPost, "/domains/sync/", nil)
		assert.Equal(t, tc.code, code)
		response := api.SyncResult{}
		assert.NoError(t, json.Unmarshal(body, &response))
		assert.False(t, response.Success)
		assert.Nil(t, response.Details)
		assert.Equal(t, tc.err.Error(), response.Error)
	}
}

func (suite *SyncSuite) TestStatus() {
	t := suite.T()
	status := api.SyncStatusResponse{
		Data: []api.SyncStatusEntry{
			{Domain: "example.com", LocalPresence: api.PresenceExists, RemotePresence: api.PresenceExists, SyncState: api.SyncStateInSync},
		},
		SiteInfo: &api.SiteInfo{SiteID: "site-1", CustomDomain: "example.com"},
	}
	suite.mocks.reconciler.On("SyncStatus", mock.Anything, test_handler.MockOrgId).Return(status, nil)

	code, body := suite.request(http.MethodGet, "/domains/sync/status", nil)
	assert.Equal(t, http.StatusOK, code)
	response := api.SyncStatusResponse{}
	assert.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, status.Data, response.Data)
	assert.Equal(t, "site-1", response.SiteInfo.SiteID)
}

func (suite *SyncSuite) TestStatusRemoteUnavailable() {
	t := suite.T()
	suite.mocks.reconciler.On("SyncStatus", mock.Anything, test_handler.MockOrgId).
		Return(api.SyncStatusResponse{}, ce.NewSyncError(ce.RemoteUnavailable, "failed to fetch remote site info", errors.New("timeout")))

	code, _ := suite.request(http.MethodGet, "/domains/sync/status", nil)
	assert.Equal(t, http.StatusBadGateway, code)
}

func (suite *SyncSuite) TestListAudits() {
	t := suite.T()
	audits := api.SyncAuditCollectionResponse{Data: []api.SyncAuditResponse{
		{UUID: "a1", OrgID: test_handler.MockOrgId, Operation: "reconcile", Success: true, RemoteDomains: json.RawMessage(`["example.com"]`)},
	}}
	suite.mocks.reg.SyncAudit.On("List", mock.Anything, test_handler.MockOrgId, api.PaginationData{Limit: 5, Offset: 0}).Return(audits, int64(1), nil)

	code, body := suite.request(http.MethodGet, "/domains/sync/audits/?limit=5", nil)
	assert.Equal(t, http.StatusOK, code)
	response := api.SyncAuditCollectionResponse{}
	assert.NoError(t, json.Unmarshal(body, &response))
	assert.Len(t, response.Data, 1)
	assert.True(t, response.Data[0].Success)
	assert.JSONEq(t, `["example.com"]`, string(response.Data[0].RemoteDomains))
	assert.Equal(t, int64(1), response.Meta.Count)
}
