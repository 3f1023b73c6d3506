package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lifestream/backend/internal/domain/donation"
	"github.com/lifestream/backend/internal/domain/shared"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

// setupRequestTestDB creates an in-memory SQLite database for testing
func setupRequestTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE blood_requests (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			recipient_id TEXT NOT NULL,
			donor_id TEXT,
			blood_group TEXT NOT NULL,
			units INTEGER NOT NULL,
			urgency TEXT NOT NULL,
			location TEXT NOT NULL,
			date_needed DATE NOT NULL,
			contact_number TEXT NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			fulfilled_at DATETIME
		)
	`).Error
	require.NoError(t, err)

	return db
}

func newPendingRequest(t *testing.T, group, location string) *donation.BloodRequest {
	t.Helper()
	request, err := donation.NewBloodRequest(donation.NewBloodRequestParams{
		RecipientID:   uuid.New(),
		BloodGroup:    valueobject.MustParseBloodGroup(group),
		Units:         2,
		Urgency:       donation.UrgencyHigh,
		Location:      location,
		DateNeeded:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		ContactNumber: "+880123456789",
		Description:   "Scheduled surgery",
	})
	require.NoError(t, err)
	return request
}

func TestGormBloodRequestRepository_CreateAndFind(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewGormBloodRequestRepository(db)
	ctx := context.Background()

	request := newPendingRequest(t, "O+", "Dhaka")
	require.NoError(t, repo.Create(ctx, request))

	found, err := repo.FindByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, found.ID)
	assert.Equal(t, request.RecipientID, found.RecipientID)
	assert.True(t, found.BloodGroup.Equals(request.BloodGroup))
	assert.Equal(t, donation.RequestStatusPending, found.Status)
	assert.Equal(t, 2, found.Units)
	assert.Equal(t, request.DateNeeded.Format("2006-01-02"), found.DateNeeded.Format("2006-01-02"))
	assert.Equal(t, "+880123456789", found.ContactNumber)
	assert.Equal(t, "Scheduled surgery", found.Description)
	assert.Nil(t, found.DonorID)
	assert.Nil(t, found.FulfilledAt)
}

func TestGormBloodRequestRepository_FindByID_NotFound(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewGormBloodRequestRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormBloodRequestRepository_FindByRecipient(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewGormBloodRequestRepository(db)
	ctx := context.Background()

	first := newPendingRequest(t, "A+", "Dhaka")
	second := newPendingRequest(t, "B+", "Sylhet")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	found, err := repo.FindByRecipient(ctx, first.RecipientID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, first.ID, found[0].ID)

	none, err := repo.FindByRecipient(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGormBloodRequestRepository_FindPendingMatches(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewGormBloodRequestRepository(db)
	ctx := context.Background()

	match := newPendingRequest(t, "O+", "Dhaka")
	wrongGroup := newPendingRequest(t, "A+", "Dhaka")
	wrongLocation := newPendingRequest(t, "O+", "Sylhet")
	settled := newPendingRequest(t, "O+", "Dhaka")
	require.NoError(t, settled.Cancel())

	for _, r := range []*donation.BloodRequest{match, wrongGroup, wrongLocation} {
		require.NoError(t, repo.Create(ctx, r))
	}
	require.NoError(t, repo.Create(ctx, settled))

	found, err := repo.FindPendingMatches(ctx, valueobject.MustParseBloodGroup("O+"), "Dhaka")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, match.ID, found[0].ID)
}

func TestGormBloodRequestRepository_FindAll(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewGormBloodRequestRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPendingRequest(t, "A-", "Dhaka")))
	require.NoError(t, repo.Create(ctx, newPendingRequest(t, "AB+", "Khulna")))

	found, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestGormBloodRequestRepository_SaveFulfillment(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewGormBloodRequestRepository(db)
	ctx := context.Background()

	t.Run("persists the transition", func(t *testing.T) {
		request := newPendingRequest(t, "O+", "Dhaka")
		require.NoError(t, repo.Create(ctx, request))

		donorID := uuid.New()
		require.NoError(t, request.Fulfill(donorID, valueobject.MustParseBloodGroup("O+"), "Dhaka"))
		require.NoError(t, repo.SaveFulfillment(ctx, request))

		found, err := repo.FindByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, donation.RequestStatusFulfilled, found.Status)
		require.NotNil(t, found.DonorID)
		assert.Equal(t, donorID, *found.DonorID)
		assert.NotNil(t, found.FulfilledAt)
		assert.Equal(t, 2, found.Version)
	})

	t.Run("reports a conflict when the request is no longer pending", func(t *testing.T) {
		request := newPendingRequest(t, "O+", "Dhaka")
		require.NoError(t, repo.Create(ctx, request))

		// Concurrent cancellation settles the row first
		stale, err := repo.FindByID(ctx, request.ID)
		require.NoError(t, err)
		require.NoError(t, request.Cancel())
		require.NoError(t, repo.SaveCancellation(ctx, request))

		require.NoError(t, stale.Fulfill(uuid.New(), valueobject.MustParseBloodGroup("O+"), "Dhaka"))
		err = repo.SaveFulfillment(ctx, stale)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)

		found, err := repo.FindByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, donation.RequestStatusCancelled, found.Status)
		assert.Nil(t, found.DonorID)
	})
}

func TestGormBloodRequestRepository_SaveCancellation(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewGormBloodRequestRepository(db)
	ctx := context.Background()

	t.Run("persists the transition", func(t *testing.T) {
		request := newPendingRequest(t, "B-", "Dhaka")
		require.NoError(t, repo.Create(ctx, request))

		require.NoError(t, request.Cancel())
		require.NoError(t, repo.SaveCancellation(ctx, request))

		found, err := repo.FindByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, donation.RequestStatusCancelled, found.Status)
	})

	t.Run("reports a conflict when a fulfillment won the race", func(t *testing.T) {
		request := newPendingRequest(t, "B-", "Dhaka")
		require.NoError(t, repo.Create(ctx, request))

		stale, err := repo.FindByID(ctx, request.ID)
		require.NoError(t, err)
		require.NoError(t, request.Fulfill(uuid.New(), valueobject.MustParseBloodGroup("B-"), "Dhaka"))
		require.NoError(t, repo.SaveFulfillment(ctx, request))

		require.NoError(t, stale.Cancel())
		err = repo.SaveCancellation(ctx, stale)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})
}

func TestGormBloodRequestRepository_FindFulfilledByDonor(t *testing.T) {
	db := setupRequestTestDB(t)
	repo := NewGormBloodRequestRepository(db)
	ctx := context.Background()

	donorID := uuid.New()

	fulfilled := newPendingRequest(t, "O+", "Dhaka")
	require.NoError(t, repo.Create(ctx, fulfilled))
	require.NoError(t, fulfilled.Fulfill(donorID, valueobject.MustParseBloodGroup("O+"), "Dhaka"))
	require.NoError(t, repo.SaveFulfillment(ctx, fulfilled))

	pending := newPendingRequest(t, "O+", "Dhaka")
	require.NoError(t, repo.Create(ctx, pending))

	found, err := repo.FindFulfilledByDonor(ctx, donorID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, fulfilled.ID, found[0].ID)

	none, err := repo.FindFulfilledByDonor(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
