package dao

import (
	"context"
	"time"

	"github.com/content-services/domain-sync-backend/pkg/models"
	"gorm.io/gorm"
)

type metricsDaoImpl struct {
	db *gorm.DB
}

func GetMetricsDao(db *gorm.DB) MetricsDao {
	if db == nil {
		return nil
	}
	return metricsDaoImpl{
		db: db,
	}
}

func (d metricsDaoImpl) DomainsCount(ctx context.Context) int {
	// select COUNT(*) from domain_records where deleted_at is NULL;
	var output int64 = -1
	d.db.WithContext(ctx).
		Model(&models.DomainRecord{}).
		Count(&output)
	return int(output)
}

func (d metricsDaoImpl) DomainsCountByStatus(ctx context.Context) map[string]int {
	// select status, COUNT(*) from domain_records where deleted_at is NULL group by status;
	type statusCount struct {
		Status string
		Count  int
	}
	var rows []statusCount
	counts := map[string]int{}
	result := d.db.WithContext(ctx).
		Model(&models.DomainRecord{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows)
	if result.Error != nil {
		return counts
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts
}

func (d metricsDaoImpl) OwnersCount(ctx context.Context) int {
	// select COUNT(DISTINCT owner_id) from domain_records where deleted_at is NULL;
	var output int64 = -1
	d.db.WithContext(ctx).
		Model(&models.DomainRecord{}).
		Distinct("owner_id").
		Count(&output)
	return int(output)
}

func (d metricsDaoImpl) FailedSyncsLast24HoursCount(ctx context.Context) int {
	// select COUNT(*) from domain_sync_audits where not success and created_at > NOW() - INTERVAL '24 hours';
	var output int64 = -1
	d.db.WithContext(ctx).
		Model(&models.DomainSyncAudit{}).
		Where("success = ?", false).
		Where("created_at > ?", time.Now().Add(-24*time.Hour)).
		Count(&output)
	return int(output)
}
