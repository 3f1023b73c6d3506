package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifestream/backend/internal/domain/shared"
	"github.com/lifestream/backend/internal/domain/shared/valueobject"
)

func newTestAccount(t *testing.T, role AccountRole) *Account {
	t.Helper()
	account, err := NewAccount("Jordan Reyes", "jordan@example.com", "sekret123", role,
		valueobject.MustParseBloodGroup("O+"), "Dhaka", "+8801712345678")
	require.NoError(t, err)
	return account
}

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name     string
		accName  string
		email    string
		password string
		role     AccountRole
		group    string
		location string
		contact  string
		wantErr  string
	}{
		{
			name:     "valid donor",
			accName:  "Jordan Reyes",
			email:    "jordan@example.com",
			password: "sekret123",
			role:     RoleDonor,
			group:    "A+",
			location: "Dhaka",
			contact:  "+8801712345678",
		},
		{
			name:     "valid recipient",
			accName:  "Sam Waters",
			email:    "sam@example.com",
			password: "sekret123",
			role:     RoleRecipient,
			group:    "AB-",
			location: "Chittagong",
			contact:  "+8801812345678",
		},
		{
			name:     "email normalized to lowercase",
			accName:  "Jordan Reyes",
			email:    "Jordan@Example.COM",
			password: "sekret123",
			role:     RoleDonor,
			group:    "A+",
			location: "Dhaka",
			contact:  "+8801712345678",
		},
		{
			name:     "empty name",
			accName:  "",
			email:    "jordan@example.com",
			password: "sekret123",
			role:     RoleDonor,
			group:    "A+",
			location: "Dhaka",
			contact:  "+8801712345678",
			wantErr:  "INVALID_NAME",
		},
		{
			name:     "invalid email",
			accName:  "Jordan Reyes",
			email:    "not-an-email",
			password: "sekret123",
			role:     RoleDonor,
			group:    "A+",
			location: "Dhaka",
			contact:  "+8801712345678",
			wantErr:  "INVALID_EMAIL",
		},
		{
			name:     "password too short",
			accName:  "Jordan Reyes",
			email:    "jordan@example.com",
			password: "ab1",
			role:     RoleDonor,
			group:    "A+",
			location: "Dhaka",
			contact:  "+8801712345678",
			wantErr:  "INVALID_PASSWORD",
		},
		{
			name:     "password without digit",
			accName:  "Jordan Reyes",
			email:    "jordan@example.com",
			password: "onlyletters",
			role:     RoleDonor,
			group:    "A+",
			location: "Dhaka",
			contact:  "+8801712345678",
			wantErr:  "INVALID_PASSWORD",
		},
		{
			name:     "invalid role",
			accName:  "Jordan Reyes",
			email:    "jordan@example.com",
			password: "sekret123",
			role:     AccountRole("superuser"),
			group:    "A+",
			location: "Dhaka",
			contact:  "+8801712345678",
			wantErr:  "INVALID_ROLE",
		},
		{
			name:     "empty location",
			accName:  "Jordan Reyes",
			email:    "jordan@example.com",
			password: "sekret123",
			role:     RoleDonor,
			group:    "A+",
			location: "",
			contact:  "+8801712345678",
			wantErr:  "INVALID_LOCATION",
		},
		{
			name:     "empty contact",
			accName:  "Jordan Reyes",
			email:    "jordan@example.com",
			password: "sekret123",
			role:     RoleDonor,
			group:    "A+",
			location: "Dhaka",
			contact:  "",
			wantErr:  "INVALID_CONTACT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var group valueobject.BloodGroup
			if tt.group != "" {
				group = valueobject.MustParseBloodGroup(tt.group)
			}

			account, err := NewAccount(tt.accName, tt.email, tt.password, tt.role, group, tt.location, tt.contact)
			if tt.wantErr != "" {
				require.Error(t, err)
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tt.wantErr, domainErr.Code)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, account.ID)
			assert.Equal(t, tt.role, account.Role)
			assert.NotEqual(t, tt.password, account.PasswordHash, "password must be hashed")
			assert.Len(t, account.GetDomainEvents(), 1)
			assert.Equal(t, EventTypeAccountRegistered, account.GetDomainEvents()[0].EventType())
		})
	}
}

func TestNewAccount_EmailNormalized(t *testing.T) {
	account, err := NewAccount("Jordan Reyes", "  Jordan@Example.COM  ", "sekret123", RoleDonor,
		valueobject.MustParseBloodGroup("A+"), "Dhaka", "+8801712345678")
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", account.Email)
}

func TestAccount_VerifyPassword(t *testing.T) {
	account := newTestAccount(t, RoleDonor)

	assert.True(t, account.VerifyPassword("sekret123"))
	assert.False(t, account.VerifyPassword("wrong-password"))
	assert.False(t, account.VerifyPassword(""))
}

func TestAccount_SetPassword(t *testing.T) {
	account := newTestAccount(t, RoleDonor)
	oldHash := account.PasswordHash

	err := account.SetPassword("newpass456")
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, account.PasswordHash)
	assert.True(t, account.VerifyPassword("newpass456"))
	assert.False(t, account.VerifyPassword("sekret123"))

	err = account.SetPassword("short")
	require.Error(t, err)
}

func TestAccount_ToggleRole(t *testing.T) {
	tests := []struct {
		name     string
		role     AccountRole
		expected AccountRole
		wantErr  bool
	}{
		{name: "donor becomes recipient", role: RoleDonor, expected: RoleRecipient},
		{name: "recipient becomes donor", role: RoleRecipient, expected: RoleDonor},
		{name: "admin cannot toggle", role: RoleAdmin, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := newTestAccount(t, tt.role)
			account.ClearDomainEvents()
			versionBefore := account.GetVersion()

			err := account.ToggleRole()
			if tt.wantErr {
				require.Error(t, err)
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "ROLE_NOT_TOGGLABLE", domainErr.Code)
				assert.Equal(t, tt.role, account.Role, "role must not change on failure")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, account.Role)
			assert.Equal(t, versionBefore+1, account.GetVersion())
			require.Len(t, account.GetDomainEvents(), 1)
			assert.Equal(t, EventTypeAccountRoleToggled, account.GetDomainEvents()[0].EventType())
		})
	}
}

func TestAccount_ToggleRole_RoundTrip(t *testing.T) {
	account := newTestAccount(t, RoleDonor)

	require.NoError(t, account.ToggleRole())
	require.NoError(t, account.ToggleRole())
	assert.Equal(t, RoleDonor, account.Role)
}

func TestAccount_RecordDonation(t *testing.T) {
	account := newTestAccount(t, RoleDonor)
	account.ClearDomainEvents()
	requestID := uuid.New()

	err := account.RecordDonation(requestID)
	require.NoError(t, err)
	require.Len(t, account.DonationHistory, 1)
	assert.Equal(t, requestID, account.DonationHistory[0].RequestID)
	assert.False(t, account.DonationHistory[0].Date.IsZero())

	err = account.RecordDonation(uuid.Nil)
	require.Error(t, err)
	assert.Len(t, account.DonationHistory, 1)
}

func TestAccount_RecordRequest(t *testing.T) {
	account := newTestAccount(t, RoleRecipient)
	requestID := uuid.New()

	err := account.RecordRequest(requestID, "pending")
	require.NoError(t, err)
	require.Len(t, account.RequestHistory, 1)
	assert.Equal(t, requestID, account.RequestHistory[0].RequestID)
	assert.Equal(t, "pending", account.RequestHistory[0].Status)

	err = account.RecordRequest(uuid.Nil, "pending")
	require.Error(t, err)
}

func TestAccountRole_IsValid(t *testing.T) {
	assert.True(t, RoleDonor.IsValid())
	assert.True(t, RoleRecipient.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, AccountRole("superuser").IsValid())
	assert.False(t, AccountRole("").IsValid())
}

func TestAccount_RoleChecks(t *testing.T) {
	donor := newTestAccount(t, RoleDonor)
	assert.True(t, donor.IsDonor())
	assert.False(t, donor.IsRecipient())
	assert.False(t, donor.IsAdmin())

	admin := newTestAccount(t, RoleAdmin)
	assert.True(t, admin.IsAdmin())
}
