package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "A@X.COM", NormalizeEmail("  a@x.com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestUser_RecordFailedAttempt_LocksAtThreshold(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &User{LockoutEnabled: true}

	for range 4 {
		assert.False(t, user.RecordFailedAttempt(now, 5, 15*time.Minute))
	}
	assert.Equal(t, 4, user.AccessFailedCount)
	assert.False(t, user.IsLockedOut(now))

	assert.True(t, user.RecordFailedAttempt(now, 5, 15*time.Minute))
	assert.Equal(t, 0, user.AccessFailedCount)
	assert.True(t, user.IsLockedOut(now))
	assert.True(t, user.IsLockedOut(now.Add(14*time.Minute)))
	assert.False(t, user.IsLockedOut(now.Add(15*time.Minute)))
}

func TestUser_RecordFailedAttempt_DisabledLockout(t *testing.T) {
	now := time.Now()

	user := &User{LockoutEnabled: false}
	for range 10 {
		assert.False(t, user.RecordFailedAttempt(now, 3, time.Minute))
	}
	assert.Equal(t, 10, user.AccessFailedCount)
	assert.False(t, user.IsLockedOut(now))

	unlimited := &User{LockoutEnabled: true}
	assert.False(t, unlimited.RecordFailedAttempt(now, 0, time.Minute))
	assert.False(t, unlimited.IsLockedOut(now))
}

func TestUser_ResetFailedAttempts(t *testing.T) {
	user := &User{}
	assert.False(t, user.ResetFailedAttempts())

	end := time.Now().Add(time.Hour)
	user.AccessFailedCount = 2
	user.LockoutEnd = &end
	assert.True(t, user.ResetFailedAttempts())
	assert.Zero(t, user.AccessFailedCount)
	assert.Nil(t, user.LockoutEnd)
}

func TestPrincipal_HasRole(t *testing.T) {
	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.HasRole(RoleAdministrator))

	p := &Principal{Roles: Roles{RoleCustomer}}
	assert.True(t, p.HasRole(RoleCustomer))
	assert.False(t, p.HasRole(RoleAdministrator))
}

func TestRolesFromStrings_DropsUnknown(t *testing.T) {
	roles := RolesFromStrings([]string{"Administrator", "merchant", "Customer"})

	assert.Equal(t, Roles{RoleAdministrator, RoleCustomer}, roles)
	assert.Equal(t, []string{"Administrator", "Customer"}, roles.ToStrings())
	assert.Equal(t, "ADMINISTRATOR", RoleAdministrator.Normalized())
}
