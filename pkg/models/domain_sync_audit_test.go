package models

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func (s *ModelsSuite) TestDomainSyncAuditCreate() {
	t := s.T()
	audit := DomainSyncAudit{
		OwnerID:       ownerIdTest,
		Operation:     "reconcile",
		Success:       true,
		RemoteDomains: datatypes.JSON(`["example.com"]`),
	}
	require.NoError(t, s.tx.Create(&audit).Error)
	assert.NotEmpty(t, audit.UUID)

	var found DomainSyncAudit
	require.NoError(t, s.tx.Where("uuid = ?", audit.UUID).First(&found).Error)
	assert.JSONEq(t, `["example.com"]`, string(found.RemoteDomains))
	assert.True(t, found.Success)
}

func (s *ModelsSuite) TestDomainSyncAuditValidation() {
	t := s.T()
	err := s.tx.Create(&DomainSyncAudit{Operation: "reconcile"}).Error
	require.Error(t, err)
	assert.Equal(t, "Owner ID cannot be blank.", err.Error())

	err = s.tx.Create(&DomainSyncAudit{OwnerID: ownerIdTest}).Error
	require.Error(t, err)
	assert.Equal(t, "Operation cannot be blank.", err.Error())
}
