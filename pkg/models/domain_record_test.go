package models

import (
	"github.com/content-services/domain-sync-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *ModelsSuite) TestDomainRecordCreate() {
	t := s.T()
	record := DomainRecord{
		CanonicalDomain: "example.com",
		OwnerID:         ownerIdTest,
	}
	require.NoError(t, s.tx.Create(&record).Error)

	assert.NotEmpty(t, record.UUID)
	assert.Equal(t, config.StatusPending, record.Status)
	assert.False(t, record.RemoteVerified)
	assert.False(t, record.CreatedAt.IsZero())

	var found DomainRecord
	require.NoError(t, s.tx.Where("uuid = ?", record.UUID).First(&found).Error)
	assert.Equal(t, "example.com", found.CanonicalDomain)
	assert.False(t, found.Tombstoned())
}

func (s *ModelsSuite) TestDomainRecordValidation() {
	t := s.T()

	err := s.tx.Create(&DomainRecord{OwnerID: ownerIdTest}).Error
	require.Error(t, err)
	assert.Equal(t, "Domain cannot be blank.", err.Error())

	err = s.tx.Create(&DomainRecord{CanonicalDomain: "example.com"}).Error
	require.Error(t, err)
	assert.Equal(t, "Owner ID cannot be blank.", err.Error())

	err = s.tx.Create(&DomainRecord{CanonicalDomain: "example.com", OwnerID: ownerIdTest, Status: "bogus"}).Error
	require.Error(t, err)
	modelErr, ok := err.(Error)
	require.True(t, ok)
	assert.True(t, modelErr.Validation)
}

func (s *ModelsSuite) TestDomainRecordUniquePerOwner() {
	t := s.T()
	require.NoError(t, s.tx.Create(&DomainRecord{CanonicalDomain: "example.com", OwnerID: ownerIdTest}).Error)
	require.NoError(t, s.tx.Create(&DomainRecord{CanonicalDomain: "example.com", OwnerID: "other-owner"}).Error)

	sp := s.tx.SavePoint("dup")
	require.NoError(t, sp.Error)
	err := s.tx.Create(&DomainRecord{CanonicalDomain: "example.com", OwnerID: ownerIdTest}).Error
	assert.Error(t, err)
	s.tx.RollbackTo("dup")
}

func (s *ModelsSuite) TestDomainRecordSoftDelete() {
	t := s.T()
	record := DomainRecord{CanonicalDomain: "deleted.example.com", OwnerID: ownerIdTest}
	require.NoError(t, s.tx.Create(&record).Error)
	require.NoError(t, s.tx.Delete(&record).Error)

	var count int64
	s.tx.Model(&DomainRecord{}).Where("owner_id = ?", ownerIdTest).Count(&count)
	assert.Equal(t, int64(0), count)

	var tombstone DomainRecord
	require.NoError(t, s.tx.Unscoped().Where("uuid = ?", record.UUID).First(&tombstone).Error)
	assert.True(t, tombstone.Tombstoned())
}
