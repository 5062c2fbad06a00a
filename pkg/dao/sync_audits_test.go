package dao

import (
	"context"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/api"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func (s *DaoSuite) createAudit(ownerID string, success bool, createdAt time.Time) models.DomainSyncAudit {
	audit := models.DomainSyncAudit{
		Base:          models.Base{CreatedAt: createdAt},
		OwnerID:       ownerID,
		Operation:     "reconcile",
		Success:       success,
		Message:       "All domains are already in sync",
		RemoteDomains: datatypes.JSON(`["example.com"]`),
	}
	require.NoError(s.T(), GetSyncAuditDao(s.tx).Create(context.Background(), &audit))
	return audit
}

func (s *DaoSuite) TestSyncAuditCreateAndList() {
	t := s.T()
	owner := randomOwner()
	now := time.Now()
	s.createAudit(owner, true, now.Add(-time.Hour))
	latest := s.createAudit(owner, false, now)
	s.createAudit(randomOwner(), true, now)

	response, total, err := GetSyncAuditDao(s.tx).List(context.Background(), owner, api.PaginationData{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, response.Data, 2)
	assert.Equal(t, latest.UUID, response.Data[0].UUID)
	assert.False(t, response.Data[0].Success)
	assert.JSONEq(t, `["example.com"]`, string(response.Data[0].RemoteDomains))
	assert.JSONEq(t, `null`, string(response.Data[0].Changes))
}

func (s *DaoSuite) TestSyncAuditCreateValidation() {
	err := GetSyncAuditDao(s.tx).Create(context.Background(), &models.DomainSyncAudit{Operation: "reconcile"})
	assert.Error(s.T(), err)
}

func (s *DaoSuite) TestLastSyncTime() {
	t := s.T()
	owner := randomOwner()
	ad := GetSyncAuditDao(s.tx)

	last, err := ad.LastSyncTime(context.Background(), owner)
	require.NoError(t, err)
	assert.Nil(t, last)

	now := time.Now()
	s.createAudit(owner, true, now.Add(-time.Hour))
	s.createAudit(owner, true, now)

	last, err = ad.LastSyncTime(context.Background(), owner)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.WithinDuration(t, now, *last, time.Second)
}
