package reconcile

import (
	"errors"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/clients/registry_client"
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/dao"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/utils"
	"github.com/stretchr/testify/mock"
)

func (s *ReconcileSuite) TestAddDomainInvalid() {
	_, err := s.reconciler().AddDomain(s.ctx, s.owner, "not a domain")
	s.Require().Error(err)
	s.Assert().True(ce.IsSyncErrorKind(err, ce.ValidationError))
	s.Assert().Empty(s.records())
}

func (s *ReconcileSuite) TestAddDomainAccepted() {
	site := api.SiteInfo{SiteID: "site-1", CustomDomain: "example.com", DomainAliases: []string{"shop.example.com"}}
	s.client.On("RequestAddDomain", mock.Anything, "shop.example.com", mock.AnythingOfType("string")).
		Return(registry_client.AddDomainResult{Accepted: true, SiteInfo: &site}, nil)

	response, err := s.reconciler().AddDomain(s.ctx, s.owner, "https://WWW.Shop.Example.com/")
	s.Require().NoError(err)
	s.Assert().Equal("shop.example.com", response.Domain)
	s.Assert().Equal(config.StatusVerified, response.Status)
	s.Assert().True(response.RemoteVerified)
	s.Assert().NotEmpty(response.UUID)

	r := s.records()["shop.example.com"]
	s.Assert().Equal("site-1", utils.Deref(r.RemoteSiteID))
	s.Assert().False(r.IsCustomDomain)
	s.Assert().Nil(r.ErrorMessage)
}

func (s *ReconcileSuite) TestAddDomainRegistryFailure() {
	s.client.On("RequestAddDomain", mock.Anything, "example.com", mock.AnythingOfType("string")).
		Return(registry_client.AddDomainResult{}, errors.New("registry down"))

	response, err := s.reconciler().AddDomain(s.ctx, s.owner, "example.com")
	s.Require().NoError(err)
	s.Assert().Equal(config.StatusError, response.Status)
	s.Assert().False(response.RemoteVerified)
	s.Assert().Contains(utils.Deref(s.records()["example.com"].ErrorMessage), "registry down")
}

func (s *ReconcileSuite) TestAddDomainNotAccepted() {
	s.client.On("RequestAddDomain", mock.Anything, "example.com", mock.AnythingOfType("string")).
		Return(registry_client.AddDomainResult{Accepted: false}, nil)

	response, err := s.reconciler().AddDomain(s.ctx, s.owner, "example.com")
	s.Require().NoError(err)
	s.Assert().Equal(config.StatusError, response.Status)
	s.Assert().Equal(MessageNotAccepted, utils.Deref(s.records()["example.com"].ErrorMessage))
}

func (s *ReconcileSuite) TestAddDomainKeepsVerifiedRecordOnRegistryFailure() {
	existing := s.seed("example.com", config.StatusVerified, true)
	s.client.On("RequestAddDomain", mock.Anything, "example.com", existing.UUID).
		Return(registry_client.AddDomainResult{}, errors.New("registry down"))

	response, err := s.reconciler().AddDomain(s.ctx, s.owner, "www.example.com")
	s.Require().NoError(err)
	s.Assert().Equal(existing.UUID, response.UUID)
	s.Assert().Equal(config.StatusVerified, response.Status)
	s.Assert().True(response.RemoteVerified)

	r := s.records()["example.com"]
	s.Assert().Equal(config.StatusVerified, r.Status)
	s.Assert().True(r.RemoteVerified)
	s.Assert().Nil(r.ErrorMessage)
}

func (s *ReconcileSuite) TestAddDomainRestoresDeleted() {
	deleted := s.seed("example.com", config.StatusVerified, true)
	s.Require().NoError(s.daoReg.Domain.Delete(s.ctx, s.owner, deleted.UUID))
	s.client.On("RequestAddDomain", mock.Anything, "example.com", mock.AnythingOfType("string")).
		Return(registry_client.AddDomainResult{Accepted: true}, nil)

	_, err := s.reconciler().AddDomain(s.ctx, s.owner, "example.com")
	s.Require().NoError(err)
	s.Assert().Contains(s.records(), "example.com")
	tombstoned, err := s.daoReg.Domain.ListTombstoned(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Assert().Empty(tombstoned)
}

func (s *ReconcileSuite) TestRemoveDomainDetachesAlias() {
	r := s.seed("alias.example.com", config.StatusVerified, true)
	s.client.On("RemoveDomain", mock.Anything, "alias.example.com").
		Return(registry_client.RemoveDomainResult{Removed: true}, nil).Once()

	s.Require().NoError(s.reconciler().RemoveDomain(s.ctx, s.owner, r.UUID))
	s.Assert().Empty(s.records())
}

func (s *ReconcileSuite) TestRemoveDomainKeepsCustomDomainAttached() {
	r, err := s.daoReg.Domain.Upsert(s.ctx, s.owner, "example.com", dao.DomainUpsert{Status: config.StatusVerified, RemoteVerified: true, IsCustomDomain: true})
	s.Require().NoError(err)

	s.Require().NoError(s.reconciler().RemoveDomain(s.ctx, s.owner, r.UUID))
	s.client.AssertNotCalled(s.T(), "RemoveDomain", mock.Anything, mock.Anything)
	s.Assert().Empty(s.records())
}

func (s *ReconcileSuite) TestRemoveDomainRegistryFailureIgnored() {
	r := s.seed("alias.example.com", config.StatusVerified, true)
	s.client.On("RemoveDomain", mock.Anything, "alias.example.com").
		Return(registry_client.RemoveDomainResult{}, errors.New("registry down"))

	s.Require().NoError(s.reconciler().RemoveDomain(s.ctx, s.owner, r.UUID))
	s.Assert().Empty(s.records())
}

func (s *ReconcileSuite) TestRemoveDomainNotFound() {
	err := s.reconciler().RemoveDomain(s.ctx, s.owner, "00000000-0000-0000-0000-000000000000")
	s.Require().Error(err)
	var daoErr *ce.DaoError
	s.Assert().ErrorAs(err, &daoErr)
	s.Assert().True(daoErr.NotFound)
}

func (s *ReconcileSuite) TestStateUpdaterActions() {
	updater := NewStateUpdater(s.daoReg.Domain)

	s.Require().NoError(updater.Apply(s.ctx, s.owner, Action{Kind: ActionInsert, Domain: "example.com", SiteID: "site-1", IsCustomDomain: true}))
	inserted := s.records()["example.com"]
	s.Assert().Equal(config.StatusVerified, inserted.Status)
	s.Assert().True(inserted.IsCustomDomain)

	s.Require().NoError(updater.Apply(s.ctx, s.owner, Action{Kind: ActionOrphan, Domain: "example.com", RecordUUID: inserted.UUID}))
	orphaned := s.records()["example.com"]
	s.Assert().Equal(config.StatusError, orphaned.Status)
	s.Assert().False(orphaned.RemoteVerified)

	s.Require().NoError(updater.Apply(s.ctx, s.owner, Action{Kind: ActionPromote, Domain: "example.com", RecordUUID: inserted.UUID, SiteID: "site-2"}))
	promoted := s.records()["example.com"]
	s.Assert().Equal(config.StatusVerified, promoted.Status)
	s.Assert().Equal("site-2", utils.Deref(promoted.RemoteSiteID))
	s.Assert().Nil(promoted.ErrorMessage)

	err := updater.Apply(s.ctx, s.owner, Action{Kind: ActionPromote, Domain: "missing.com", RecordUUID: "missing"})
	s.Require().Error(err)
	s.Assert().True(ce.IsSyncErrorKind(err, ce.LocalStoreError))
}
