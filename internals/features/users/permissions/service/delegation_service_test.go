package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"campushub_backend/internals/constants"
	permModel "campushub_backend/internals/features/users/permissions/model"
)

// Admin short-circuits before the store is consulted, so a nil DB must
// never be touched.
func TestHasPermission_AdminImplicitGrant(t *testing.T) {
	adminID := uuid.New()

	for _, capability := range constants.AllCapabilities {
		ok, err := HasPermission(nil, adminID, constants.RoleAdmin, capability)
		require.NoError(t, err)
		assert.True(t, ok, "admin should hold %s without a stored row", capability)
	}
}

func TestHasPermission_UnknownCapabilityNeverGranted(t *testing.T) {
	ok, err := HasPermission(nil, uuid.New(), constants.RoleAdmin, "manage_everything")
	require.NoError(t, err)
	// even the admin short-circuit applies before the name check
	assert.True(t, ok)

	ok, err = HasPermission(nil, uuid.New(), constants.RoleTeacher, "manage_everything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateCapabilities_RejectsUnknownKeys(t *testing.T) {
	_, err := ValidateCapabilities(map[string]bool{
		constants.CapManageStudents: true,
		"hack_the_gibson":           true,
	})

	assert.ErrorIs(t, err, ErrUnknownCapability)
}

func TestValidateCapabilities_KeepsKnownKeys(t *testing.T) {
	set, err := ValidateCapabilities(map[string]bool{
		constants.CapManageStudents:   true,
		constants.CapManageAttendance: false,
	})

	require.NoError(t, err)
	assert.True(t, set.Has(constants.CapManageStudents))
	assert.False(t, set.Has(constants.CapManageAttendance))
}

func TestCapabilitySet_HasUnknownName(t *testing.T) {
	set := CapabilitySet{"manage_everything": true}

	assert.False(t, set.Has("manage_everything"))
}

func TestCapabilitySet_EmptySetGrantsNothing(t *testing.T) {
	set := CapabilitySet{}

	for _, capability := range constants.AllCapabilities {
		assert.False(t, set.Has(capability))
	}
	assert.Empty(t, set.Granted())
}

func TestCapabilitySet_GrantedStableOrder(t *testing.T) {
	set := CapabilitySet{
		constants.CapViewReports:    true,
		constants.CapManageStudents: true,
		constants.CapManageFees:     false,
	}

	first := set.Granted()
	second := set.Granted()

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []string{constants.CapManageStudents, constants.CapViewReports}, first)
}

func TestCapabilitiesFromRow_DropsNonBooleanAndUnknown(t *testing.T) {
	row := permModel.PermissionSetModel{
		PermissionSetCapabilities: datatypes.JSONMap{
			constants.CapManageFees:     true,
			constants.CapManageStudents: "yes",
			"manage_everything":         true,
		},
	}

	set := capabilitiesFromRow(&row)

	assert.True(t, set.Has(constants.CapManageFees))
	assert.False(t, set.Has(constants.CapManageStudents))
	assert.Len(t, set, 1)
}
