package dao

import (
	"context"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/config"
	ce "github.com/content-services/domain-sync-backend/pkg/errors"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"github.com/content-services/domain-sync-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *DaoSuite) TestListNewestFirst() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner := randomOwner()
	now := time.Now()

	s.createDomain(owner, "old.example.com", config.StatusVerified, true, now.Add(-2*time.Hour))
	s.createDomain(owner, "new.example.com", config.StatusPending, false, now)
	s.createDomain(owner, "mid.example.com", config.StatusError, false, now.Add(-time.Hour))
	s.createDomain(randomOwner(), "other.example.com", config.StatusVerified, true, now)

	records, err := dd.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "new.example.com", records[0].CanonicalDomain)
	assert.Equal(t, "mid.example.com", records[1].CanonicalDomain)
	assert.Equal(t, "old.example.com", records[2].CanonicalDomain)
}

func (s *DaoSuite) TestListEmpty() {
	records, err := GetDomainDao(s.tx).List(context.Background(), randomOwner())
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), records)
	assert.Empty(s.T(), records)
}

func (s *DaoSuite) TestListPaginated() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner := randomOwner()
	now := time.Now()

	s.createDomain(owner, "a.example.com", config.StatusVerified, true, now.Add(-3*time.Hour))
	s.createDomain(owner, "b.example.com", config.StatusVerified, true, now.Add(-2*time.Hour))
	s.createDomain(owner, "c.example.com", config.StatusError, false, now.Add(-time.Hour))

	response, total, err := dd.ListPaginated(context.Background(), owner, api.PaginationData{Limit: 1, Offset: 1}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "b.example.com", response.Data[0].Domain)
	assert.Equal(t, owner, response.Data[0].OrgID)
	assert.Equal(t, siteIDTest, response.Data[0].RemoteSiteID)

	response, total, err = dd.ListPaginated(context.Background(), owner, api.PaginationData{Limit: 10}, config.StatusError)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "c.example.com", response.Data[0].Domain)
	assert.Equal(t, config.OrphanedDomainMessage, response.Data[0].ErrorMessage)
}

func (s *DaoSuite) TestFetch() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner := randomOwner()
	created := s.createDomain(owner, "example.com", config.StatusVerified, true, time.Now())

	found, err := dd.Fetch(context.Background(), owner, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, "example.com", found.CanonicalDomain)

	_, err = dd.Fetch(context.Background(), randomOwner(), created.UUID)
	require.Error(t, err)
	daoError, ok := err.(*ce.DaoError)
	require.True(t, ok)
	assert.True(t, daoError.NotFound)
}

func (s *DaoSuite) TestUpsertInsertsThenOverwrites() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner := randomOwner()

	inserted, err := dd.Upsert(context.Background(), owner, "example.com", DomainUpsert{
		Status:         config.StatusVerified,
		RemoteVerified: true,
		RemoteSiteID:   &siteIDTest,
		IsCustomDomain: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, inserted.UUID)
	assert.Equal(t, config.StatusVerified, inserted.Status)
	assert.True(t, inserted.RemoteVerified)
	assert.True(t, inserted.IsCustomDomain)
	require.NotNil(t, inserted.RemoteSiteID)
	assert.Equal(t, siteIDTest, *inserted.RemoteSiteID)

	updated, err := dd.Upsert(context.Background(), owner, "example.com", DomainUpsert{
		Status:       config.StatusPending,
		RemoteSiteID: &siteIDTest,
	})
	require.NoError(t, err)
	assert.Equal(t, inserted.UUID, updated.UUID)
	assert.Equal(t, config.StatusPending, updated.Status)
	assert.False(t, updated.RemoteVerified)
	assert.False(t, updated.IsCustomDomain)

	var count int64
	s.tx.Model(&models.DomainRecord{}).Where("owner_id = ?", owner).Count(&count)
	assert.Equal(t, int64(1), count)
}

func (s *DaoSuite) TestUpsertSameDomainDifferentOwners() {
	t := s.T()
	dd := GetDomainDao(s.tx)

	first, err := dd.Upsert(context.Background(), randomOwner(), "shared.example.com", DomainUpsert{Status: config.StatusPending})
	require.NoError(t, err)
	second, err := dd.Upsert(context.Background(), randomOwner(), "shared.example.com", DomainUpsert{Status: config.StatusPending})
	require.NoError(t, err)
	assert.NotEqual(t, first.UUID, second.UUID)
}

func (s *DaoSuite) TestUpsertRestoresTombstone() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner := randomOwner()
	created := s.createDomain(owner, "example.com", config.StatusVerified, true, time.Now())
	require.NoError(t, dd.Delete(context.Background(), owner, created.UUID))

	restored, err := dd.Upsert(context.Background(), owner, "example.com", DomainUpsert{Status: config.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, created.UUID, restored.UUID)
	assert.False(t, restored.Tombstoned())

	tombstoned, err := dd.ListTombstoned(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, tombstoned)
}

func (s *DaoSuite) TestUpsertValidation() {
	t := s.T()
	_, err := GetDomainDao(s.tx).Upsert(context.Background(), randomOwner(), "", DomainUpsert{Status: config.StatusPending})
	require.Error(t, err)
	daoError, ok := err.(*ce.DaoError)
	require.True(t, ok)
	assert.True(t, daoError.BadValidation)

	_, err = GetDomainDao(s.tx).Upsert(context.Background(), randomOwner(), "example.com", DomainUpsert{Status: "bogus"})
	require.Error(t, err)
	daoError, ok = err.(*ce.DaoError)
	require.True(t, ok)
	assert.True(t, daoError.BadValidation)
}

func (s *DaoSuite) TestUpdateStatusPartial() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner := randomOwner()
	past := time.Now().Add(-time.Hour)
	created := s.createDomain(owner, "example.com", config.StatusError, false, past)

	err := dd.UpdateStatus(context.Background(), created.UUID, DomainStatusUpdate{
		Status:         utils.Ptr(config.StatusVerified),
		RemoteVerified: utils.Ptr(true),
		ErrorMessage:   utils.Ptr(""),
	})
	require.NoError(t, err)

	found, err := dd.Fetch(context.Background(), owner, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, config.StatusVerified, found.Status)
	assert.True(t, found.RemoteVerified)
	assert.Nil(t, found.ErrorMessage)
	require.NotNil(t, found.RemoteSiteID)
	assert.Equal(t, siteIDTest, *found.RemoteSiteID)
	assert.True(t, found.UpdatedAt.After(past))
}

func (s *DaoSuite) TestUpdateStatusStampsUpdatedAtOnly() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner := randomOwner()
	past := time.Now().Add(-time.Hour)
	created := s.createDomain(owner, "example.com", config.StatusPending, false, past)

	require.NoError(t, dd.UpdateStatus(context.Background(), created.UUID, DomainStatusUpdate{}))

	found, err := dd.Fetch(context.Background(), owner, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, config.StatusPending, found.Status)
	assert.True(t, found.UpdatedAt.After(past))
}

func (s *DaoSuite) TestUpdateStatusNotFound() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner := randomOwner()

	err := dd.UpdateStatus(context.Background(), "bad-uuid", DomainStatusUpdate{Status: utils.Ptr(config.StatusError)})
	require.Error(t, err)
	daoError, ok := err.(*ce.DaoError)
	require.True(t, ok)
	assert.True(t, daoError.NotFound)

	// tombstoned records are not updated
	created := s.createDomain(owner, "gone.example.com", config.StatusVerified, true, time.Now())
	require.NoError(t, dd.Delete(context.Background(), owner, created.UUID))
	err = dd.UpdateStatus(context.Background(), created.UUID, DomainStatusUpdate{Status: utils.Ptr(config.StatusError)})
	require.Error(t, err)
}

func (s *DaoSuite) TestDelete() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner := randomOwner()
	created := s.createDomain(owner, "example.com", config.StatusVerified, true, time.Now())

	require.NoError(t, dd.Delete(context.Background(), owner, created.UUID))

	records, err := dd.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, records)

	tombstoned, err := dd.ListTombstoned(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, tombstoned, 1)
	assert.Equal(t, "example.com", tombstoned[0].CanonicalDomain)
	assert.True(t, tombstoned[0].Tombstoned())

	err = dd.Delete(context.Background(), owner, created.UUID)
	require.Error(t, err)
	daoError, ok := err.(*ce.DaoError)
	require.True(t, ok)
	assert.True(t, daoError.NotFound)
}

func (s *DaoSuite) TestListOwners() {
	t := s.T()
	dd := GetDomainDao(s.tx)
	owner1 := "1000001"
	owner2 := "1000002"
	s.createDomain(owner2, "a.example.com", config.StatusVerified, true, time.Now())
	s.createDomain(owner1, "b.example.com", config.StatusVerified, true, time.Now())
	s.createDomain(owner1, "c.example.com", config.StatusPending, false, time.Now())

	owners, err := dd.ListOwners(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{owner1, owner2}, owners)
}
