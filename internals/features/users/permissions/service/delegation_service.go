package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	permModel "campushub_backend/internals/features/users/permissions/model"
)

// ErrUnknownCapability is returned when a capability name is outside the
// fixed enumerated set.
var ErrUnknownCapability = errors.New("unknown capability")

// CapabilitySet is the in-memory form of one principal's delegated
// capability flags.
type CapabilitySet map[string]bool

// Has reports whether the named capability is granted. Unknown names are
// never granted.
func (s CapabilitySet) Has(capability string) bool {
	if !constants.IsKnownCapability(capability) {
		return false
	}
	return s[capability]
}

// Granted returns the sorted-stable list form used by admin views.
func (s CapabilitySet) Granted() []string {
	out := make([]string, 0, len(s))
	for _, c := range constants.AllCapabilities {
		if s[c] {
			out = append(out, c)
		}
	}
	return out
}

// ValidateCapabilities checks every key against the fixed enum and
// returns the normalised set. Unknown keys are rejected, never stored.
func ValidateCapabilities(raw map[string]bool) (CapabilitySet, error) {
	set := make(CapabilitySet, len(raw))
	for name, granted := range raw {
		if !constants.IsKnownCapability(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCapability, name)
		}
		set[name] = granted
	}
	return set, nil
}

// capabilitiesFromRow converts the stored JSON map (values decode as
// any) back to a CapabilitySet, dropping anything non-boolean.
func capabilitiesFromRow(m *permModel.PermissionSetModel) CapabilitySet {
	set := make(CapabilitySet, len(m.PermissionSetCapabilities))
	for name, v := range m.PermissionSetCapabilities {
		if b, ok := v.(bool); ok && constants.IsKnownCapability(name) {
			set[name] = b
		}
	}
	return set
}

// HasPermission answers a capability membership query for a principal.
// Admins are implicitly granted everything; the store is not consulted.
// A missing row means the empty set, never an error.
func HasPermission(db *gorm.DB, principalID uuid.UUID, role, capability string) (bool, error) {
	if role == constants.RoleAdmin {
		return true, nil
	}
	if !constants.IsKnownCapability(capability) {
		return false, nil
	}
	set, err := GetPermissionSet(db, principalID)
	if err != nil {
		return false, err
	}
	return set.Has(capability), nil
}

// GetPermissionSet loads one principal's capability set. No row ⇒ empty set.
func GetPermissionSet(db *gorm.DB, principalID uuid.UUID) (CapabilitySet, error) {
	var row permModel.PermissionSetModel
	err := db.Where("permission_set_user_id = ?", principalID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CapabilitySet{}, nil
	}
	if err != nil {
		return nil, err
	}
	return capabilitiesFromRow(&row), nil
}

// SetPermissions upserts the capability set for a principal. The caller
// is responsible for the admin/principal authorization gate.
func SetPermissions(db *gorm.DB, principalID, grantedBy uuid.UUID, set CapabilitySet) error {
	stored := make(map[string]interface{}, len(set))
	for name, granted := range set {
		stored[name] = granted
	}

	var existing permModel.PermissionSetModel
	err := db.Where("permission_set_user_id = ?", principalID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row := permModel.PermissionSetModel{
			PermissionSetUserID:       principalID,
			PermissionSetCapabilities: stored,
			PermissionSetGrantedBy:    &grantedBy,
		}
		return db.Create(&row).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&permModel.PermissionSetModel{}).
		Where("permission_set_id = ?", existing.PermissionSetID).
		Updates(map[string]any{
			"permission_set_capabilities": stored,
			"permission_set_granted_by":   grantedBy,
		}).Error
}

// GetAll returns every stored capability set keyed by principal, for the
// bulk delegation view.
func GetAll(db *gorm.DB) (map[uuid.UUID]CapabilitySet, error) {
	var rows []permModel.PermissionSetModel
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]CapabilitySet, len(rows))
	for i := range rows {
		out[rows[i].PermissionSetUserID] = capabilitiesFromRow(&rows[i])
	}
	return out, nil
}
