package dao

import (
	"testing"
)

type MockDaoRegistry struct {
	Domain    *MockDomainDao
	SyncAudit *MockSyncAuditDao
	Metrics   *MockMetricsDao
}

func (m *MockDaoRegistry) ToDaoRegistry() *DaoRegistry {
	r := DaoRegistry{
		Domain:    m.Domain,
		SyncAudit: m.SyncAudit,
		Metrics:   m.Metrics,
	}
	return &r
}

func GetMockDaoRegistry(t *testing.T) *MockDaoRegistry {
	reg := MockDaoRegistry{
		Domain:    NewMockDomainDao(t),
		SyncAudit: NewMockSyncAuditDao(t),
		Metrics:   NewMockMetricsDao(t),
	}
	return &reg
}
