package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifestream/backend/internal/domain/donation"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

// BloodRequestModel is the persistence model for the BloodRequest aggregate.
type BloodRequestModel struct {
	AggregateModel
	RecipientID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	DonorID       *uuid.UUID             `gorm:"type:uuid;index"`
	BloodGroup    valueobject.BloodGroup `gorm:"type:varchar(3);not null;index"`
	Units         int                    `gorm:"not null"`
	Urgency       donation.Urgency       `gorm:"type:varchar(20);not null"`
	Location      string                 `gorm:"type:varchar(200);not null;index"`
	DateNeeded    time.Time              `gorm:"type:date;not null"`
	ContactNumber string                 `gorm:"type:varchar(50);not null"`
	Description   string                 `gorm:"type:text;not null"`
	Status        donation.RequestStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	FulfilledAt   *time.Time
}

// TableName returns the table name for GORM
func (BloodRequestModel) TableName() string {
	return "blood_requests"
}

// ToDomain converts the persistence model to a domain BloodRequest.
func (m *BloodRequestModel) ToDomain() *donation.BloodRequest {
	request := &donation.BloodRequest{
		RecipientID:   m.RecipientID,
		DonorID:       m.DonorID,
		BloodGroup:    m.BloodGroup,
		Units:         m.Units,
		Urgency:       m.Urgency,
		Location:      m.Location,
		DateNeeded:    m.DateNeeded,
		ContactNumber: m.ContactNumber,
		Description:   m.Description,
		Status:        m.Status,
		FulfilledAt:   m.FulfilledAt,
	}
	m.PopulateAggregateRoot(&request.BaseAggregateRoot)
	return request
}

// FromDomain populates the persistence model from a domain BloodRequest.
func (m *BloodRequestModel) FromDomain(r *donation.BloodRequest) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.RecipientID = r.RecipientID
	m.DonorID = r.DonorID
	m.BloodGroup = r.BloodGroup
	m.Units = r.Units
	m.Urgency = r.Urgency
	m.Location = r.Location
	m.DateNeeded = r.DateNeeded
	m.ContactNumber = r.ContactNumber
	m.Description = r.Description
	m.Status = r.Status
	m.FulfilledAt = r.FulfilledAt
}

// BloodRequestModelFromDomain creates a new persistence model from a domain BloodRequest.
func BloodRequestModelFromDomain(r *donation.BloodRequest) *BloodRequestModel {
	m := &BloodRequestModel{}
	m.FromDomain(r)
	return m
}
