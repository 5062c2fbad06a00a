package seeds

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/content-services/domain-sync-backend/pkg/models"
	"github.com/labstack/gommon/random"
	"gorm.io/gorm"
)

type SeedOptions struct {
	OwnerID        string
	Status         *string
	RemoteVerified *bool
	SiteID         *string
}

// SeedDomainRecords inserts size random domain records and returns them
func SeedDomainRecords(db *gorm.DB, size int, options SeedOptions) ([]models.DomainRecord, error) {
	var records []models.DomainRecord

	for i := 0; i < size; i++ {
		record := models.DomainRecord{
			CanonicalDomain: RandomDomain(),
			OwnerID:         createOwnerId(options.OwnerID),
			Status:          createStatus(options.Status),
			RemoteSiteID:    options.SiteID,
		}
		if options.RemoteVerified != nil {
			record.RemoteVerified = *options.RemoteVerified
		} else {
			record.RemoteVerified = record.Status == config.StatusVerified
		}
		if record.Status == config.StatusError {
			msg := config.OrphanedDomainMessage
			record.ErrorMessage = &msg
		}
		records = append(records, record)
	}
	result := db.Create(&records)
	if result.Error != nil {
		return nil, errors.New("could not save seed")
	}
	return records, nil
}

func createOwnerId(existingOwnerId string) string {
	if existingOwnerId != "" {
		return existingOwnerId
	}
	return RandomOrgId()
}

func createStatus(existingStatus *string) string {
	if existingStatus != nil {
		return *existingStatus
	}
	statuses := []string{config.StatusPending, config.StatusVerified, config.StatusVerified, config.StatusError}
	return statuses[rand.Intn(len(statuses))]
}

// RandomDomain returns a random, valid canonical domain
func RandomDomain() string {
	return fmt.Sprintf("%s.%s.com", strings.ToLower(RandStringBytes(6)), random.String(12, random.Lowercase, random.Numeric))
}

func RandomOrgId() string {
	return random.String(10, random.Numeric)
}

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func RandStringBytes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}
