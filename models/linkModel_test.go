package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestPermissionSetAllowsByDefault(t *testing.T) {
	var set PermissionSet
	for _, category := range Categories() {
		assert.True(t, set.Allows(category), "empty set should allow %s", category)
	}
}

func TestPermissionSetRevokeSingleCategory(t *testing.T) {
	set := PermissionSet{Medications: boolPtr(false)}

	assert.False(t, set.Allows(CategoryMedications))
	assert.True(t, set.Allows(CategoryHealthLogs))
	assert.True(t, set.Allows(CategoryReports))
	assert.True(t, set.Allows(CategoryConsultations))
}

func TestPermissionSetExplicitGrant(t *testing.T) {
	set := PermissionSet{Reports: boolPtr(true), DietPlans: boolPtr(false)}

	assert.True(t, set.Allows(CategoryReports))
	assert.False(t, set.Allows(CategoryDietPlans))
}

func TestPermissionSetUnknownCategoryDenied(t *testing.T) {
	var set PermissionSet
	assert.False(t, set.Allows(Category("billing")))
}

func TestPermissionSetScanValueRoundTrip(t *testing.T) {
	set := PermissionSet{
		HealthLogs:  boolPtr(false),
		Medications: boolPtr(true),
	}

	value, err := set.Value()
	require.NoError(t, err)

	var decoded PermissionSet
	require.NoError(t, decoded.Scan(value))

	assert.False(t, decoded.Allows(CategoryHealthLogs))
	assert.True(t, decoded.Allows(CategoryMedications))
	assert.Nil(t, decoded.Reports, "untouched categories should stay absent")
}

func TestPermissionSetScanNullColumn(t *testing.T) {
	set := PermissionSet{HealthLogs: boolPtr(false)}
	require.NoError(t, set.Scan(nil))

	for _, category := range Categories() {
		assert.True(t, set.Allows(category))
	}
}

func TestPermissionSetScanIgnoresUnknownKeys(t *testing.T) {
	var set PermissionSet
	require.NoError(t, set.Scan([]byte(`{"medications":false,"billing":true}`)))

	assert.False(t, set.Allows(CategoryMedications))
	assert.True(t, set.Allows(CategoryHealthLogs))
}

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, category.Valid(), "%s should be valid", category)
	}
	assert.False(t, Category("billing").Valid())
	assert.False(t, Category("").Valid())
}
