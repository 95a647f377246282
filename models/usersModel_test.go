package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIsShadow(t *testing.T) {
	email := "ama@example.com"
	hash := "$2a$10$abcdefghijklmnopqrstuv"

	shadow := User{ID: "u1", Name: "Ama Owusu", Role: RolePatient}
	assert.True(t, shadow.IsShadow())

	credentialed := User{ID: "u2", Email: &email, PasswordHash: &hash, Role: RolePatient}
	assert.False(t, credentialed.IsShadow())

	// An email alone (password pending reset) still counts as a real account.
	emailOnly := User{ID: "u3", Email: &email, Role: RolePatient}
	assert.False(t, emailOnly.IsShadow())
}
