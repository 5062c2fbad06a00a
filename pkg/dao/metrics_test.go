package dao

import (
	"context"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/stretchr/testify/assert"
)

func (s *DaoSuite) TestMetricsCounts() {
	t := s.T()
	md := GetMetricsDao(s.tx)
	ctx := context.Background()

	domains := md.DomainsCount(ctx)
	owners := md.OwnersCount(ctx)
	byStatus := md.DomainsCountByStatus(ctx)
	failed := md.FailedSyncsLast24HoursCount(ctx)

	owner := randomOwner()
	s.createDomain(owner, "a.example.com", config.StatusVerified, true, time.Now())
	s.createDomain(owner, "b.example.com", config.StatusError, false, time.Now())
	s.createAudit(owner, false, time.Now())
	s.createAudit(owner, true, time.Now())
	s.createAudit(owner, false, time.Now().Add(-48*time.Hour))

	assert.Equal(t, domains+2, md.DomainsCount(ctx))
	assert.Equal(t, owners+1, md.OwnersCount(ctx))
	assert.Equal(t, failed+1, md.FailedSyncsLast24HoursCount(ctx))

	updated := md.DomainsCountByStatus(ctx)
	assert.Equal(t, byStatus[config.StatusVerified]+1, updated[config.StatusVerified])
	assert.Equal(t, byStatus[config.StatusError]+1, updated[config.StatusError])
}

func (s *DaoSuite) TestGetMetricsDaoNil() {
	assert.Nil(s.T(), GetMetricsDao(nil))
}
