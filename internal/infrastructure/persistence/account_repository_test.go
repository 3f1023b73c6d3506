package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lifestream/backend/internal/domain/identity"
	"github.com/lifestream/backend/internal/domain/shared"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

// setupAccountTestDB creates an in-memory SQLite database for testing
func setupAccountTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE accounts (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			blood_group TEXT NOT NULL,
			location TEXT NOT NULL,
			contact TEXT NOT NULL,
			donation_history TEXT NOT NULL DEFAULT '[]',
			request_history TEXT NOT NULL DEFAULT '[]'
		)
	`).Error
	require.NoError(t, err)

	return db
}

func newStoredAccount(t *testing.T, email string, role identity.AccountRole) *identity.Account {
	t.Helper()
	account, err := identity.NewAccount("Jordan Reyes", email, "sekret123",
		role, valueobject.MustParseBloodGroup("O+"), "Dhaka", "+8801712345678")
	require.NoError(t, err)
	return account
}

func TestGormAccountRepository_CreateAndFind(t *testing.T) {
	db := setupAccountTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	account := newStoredAccount(t, "jordan@example.com", identity.RoleDonor)
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, "jordan@example.com", found.Email)
	assert.Equal(t, identity.RoleDonor, found.Role)
	assert.True(t, found.BloodGroup.Equals(account.BloodGroup))
	assert.Empty(t, found.DonationHistory)
	assert.True(t, found.VerifyPassword("sekret123"))
}

func TestGormAccountRepository_DuplicateEmail(t *testing.T) {
	db := setupAccountTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	first := newStoredAccount(t, "jordan@example.com", identity.RoleDonor)
	require.NoError(t, repo.Create(ctx, first))

	second := newStoredAccount(t, "jordan@example.com", identity.RoleRecipient)
	err := repo.Create(ctx, second)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestGormAccountRepository_FindByEmail(t *testing.T) {
	db := setupAccountTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	account := newStoredAccount(t, "jordan@example.com", identity.RoleDonor)
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByEmail(ctx, "Jordan@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = repo.FindByEmail(ctx, "")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormAccountRepository_ExistsByEmail(t *testing.T) {
	db := setupAccountTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	account := newStoredAccount(t, "jordan@example.com", identity.RoleDonor)
	require.NoError(t, repo.Create(ctx, account))

	exists, err := repo.ExistsByEmail(ctx, "JORDAN@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormAccountRepository_UpdatePersistsHistories(t *testing.T) {
	db := setupAccountTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	account := newStoredAccount(t, "jordan@example.com", identity.RoleDonor)
	require.NoError(t, repo.Create(ctx, account))

	requestID := uuid.New()
	require.NoError(t, account.RecordDonation(requestID))
	require.NoError(t, account.ToggleRole())
	require.NoError(t, repo.Update(ctx, account))

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, identity.RoleRecipient, found.Role)
	require.Len(t, found.DonationHistory, 1)
	assert.Equal(t, requestID, found.DonationHistory[0].RequestID)
}

func TestGormAccountRepository_Delete(t *testing.T) {
	db := setupAccountTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	account := newStoredAccount(t, "jordan@example.com", identity.RoleDonor)
	require.NoError(t, repo.Create(ctx, account))

	require.NoError(t, repo.Delete(ctx, account.ID))

	_, err := repo.FindByID(ctx, account.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, account.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormAccountRepository_Count(t *testing.T) {
	db := setupAccountTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(ctx, newStoredAccount(t, "a@example.com", identity.RoleDonor)))
	require.NoError(t, repo.Create(ctx, newStoredAccount(t, "b@example.com", identity.RoleRecipient)))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
