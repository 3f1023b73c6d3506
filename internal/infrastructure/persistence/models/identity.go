package models

import (
	"github.com/lifestream/backend/internal/domain/identity"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

// AccountModel is the persistence model for the Account aggregate.
// Donation and request histories are stored as JSON documents; the
// repository handles encoding and decoding.
type AccountModel struct {
	AggregateModel
	Name            string                 `gorm:"type:varchar(100);not null"`
	Email           string                 `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash    string                 `gorm:"type:varchar(255);not null"`
	Role            identity.AccountRole   `gorm:"type:varchar(20);not null;index"`
	BloodGroup      valueobject.BloodGroup `gorm:"type:varchar(3);not null;index"`
	Location        string                 `gorm:"type:varchar(200);not null;index"`
	Contact         string                 `gorm:"type:varchar(50);not null"`
	DonationHistory string                 `gorm:"type:jsonb;default:'[]'"`
	RequestHistory  string                 `gorm:"type:jsonb;default:'[]'"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain Account.
// Note: histories must be decoded separately by the repository.
func (m *AccountModel) ToDomain() *identity.Account {
	account := &identity.Account{
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Role:            m.Role,
		BloodGroup:      m.BloodGroup,
		Location:        m.Location,
		Contact:         m.Contact,
		DonationHistory: make([]identity.DonationRecord, 0),
		RequestHistory:  make([]identity.RequestRecord, 0),
	}
	m.PopulateAggregateRoot(&account.BaseAggregateRoot)
	return account
}

// FromDomain populates the persistence model from a domain Account.
// Note: histories must be JSON-encoded by the repository.
func (m *AccountModel) FromDomain(a *identity.Account, donationHistoryJSON, requestHistoryJSON string) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Name = a.Name
	m.Email = a.Email
	m.PasswordHash = a.PasswordHash
	m.Role = a.Role
	m.BloodGroup = a.BloodGroup
	m.Location = a.Location
	m.Contact = a.Contact
	m.DonationHistory = donationHistoryJSON
	m.RequestHistory = requestHistoryJSON
}
