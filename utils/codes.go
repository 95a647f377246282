package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	inviteCodeLength = 6
	shareCodeLength  = 8
	codeAlphabet     = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GenerateInviteCode returns a doctor's persistent invite code: short,
// human-shareable, unique per doctor profile. The alphabet drops easily
// confused characters (0/O, 1/I).
func GenerateInviteCode() (string, error) {
	return randomCode(inviteCodeLength)
}

// GenerateShareCode returns a one-time claim token for a shadow link. It is
// longer than an invite code since it guards record ownership, not just
// link creation.
func GenerateShareCode() (string, error) {
	return randomCode(shareCodeLength)
}

// GenerateTempPassword returns the temporary password handed to a patient
// whose account a doctor created on their behalf.
func GenerateTempPassword() (string, error) {
	code, err := randomCode(10)
	if err != nil {
		return "", err
	}
	return "cl!" + code, nil
}

func randomCode(length int) (string, error) {
	code := make([]byte, length)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}
