package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	valid := RegistrationInput{
		Name:     "Kwame Asante",
		Email:    "kwame@example.com",
		Password: "Str0ng!pass",
		Role:     "patient",
	}
	require.NoError(t, ValidateRegistration(valid))

	missingEmail := valid
	missingEmail.Email = ""
	assert.Error(t, ValidateRegistration(missingEmail))

	badRole := valid
	badRole.Role = "admin"
	assert.Error(t, ValidateRegistration(badRole), "admin accounts are not self-service")

	weakPassword := valid
	weakPassword.Password = "password"
	assert.Error(t, ValidateRegistration(weakPassword))
}

func TestValidatePatientRegistrationEmailOptional(t *testing.T) {
	require.NoError(t, ValidatePatientRegistration("Ama Owusu", ""))
	require.NoError(t, ValidatePatientRegistration("Ama Owusu", "ama@example.com"))

	assert.Error(t, ValidatePatientRegistration("", ""))
	assert.Error(t, ValidatePatientRegistration("A", ""))
	assert.Error(t, ValidatePatientRegistration("Ama Owusu", "not-an-email"))
}

func TestPasswordComplexity(t *testing.T) {
	assert.ErrorIs(t, validatePassword("Ab1!"), ErrPasswordTooShort)
	assert.ErrorIs(t, validatePassword("alllowercase1!"), ErrPasswordNotComplex)
	assert.ErrorIs(t, validatePassword("NoDigitsHere!"), ErrPasswordNotComplex)
	assert.NoError(t, validatePassword("Str0ng!pass"))
}
