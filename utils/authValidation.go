package utils

import (
	"errors"
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
)

// RegistrationInput is the payload validated at self-service registration.
type RegistrationInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ValidateRegistration validates self-service registration data.
func ValidateRegistration(input RegistrationInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&input.Email, validation.Required, is.Email),
		validation.Field(&input.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
		validation.Field(&input.Role, validation.Required, validation.In("patient", "doctor")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePatientRegistration validates a doctor-initiated patient
// registration. Email is optional: its absence selects the shadow flow.
func ValidatePatientRegistration(name, email string) error {
	err := validation.Errors{
		"name":  validation.Validate(name, validation.Required, validation.Length(2, 100)),
		"email": validation.Validate(email, is.Email),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
