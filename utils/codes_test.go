package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInviteCode(t *testing.T) {
	code, err := GenerateInviteCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected character %q", r)
	}
}

func TestGenerateShareCode(t *testing.T) {
	code, err := GenerateShareCode()
	require.NoError(t, err)
	assert.Len(t, code, 8)

	// The alphabet omits the glyphs that read ambiguously over the phone.
	for _, banned := range "0O1Il" {
		assert.NotContains(t, code, string(banned))
	}
}

func TestGenerateShareCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateShareCode()
		require.NoError(t, err)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 45, "codes should be effectively unique")
}

func TestGenerateTempPassword(t *testing.T) {
	password, err := GenerateTempPassword()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(password, "cl!"))
	assert.Len(t, password, 13)
}
