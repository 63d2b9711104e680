package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PermissionSetModel holds the delegated capability flags for one
// principal (a teacher or student user). At most one live row per user.
type PermissionSetModel struct {
	PermissionSetID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:permission_set_id" json:"permission_set_id"`
	PermissionSetUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_permission_set_user;column:permission_set_user_id" json:"permission_set_user_id"`

	// capability-name -> bool, keys validated against constants.AllCapabilities
	PermissionSetCapabilities datatypes.JSONMap `gorm:"column:permission_set_capabilities;not null" json:"permission_set_capabilities"`

	PermissionSetGrantedBy *uuid.UUID `gorm:"type:uuid;column:permission_set_granted_by" json:"permission_set_granted_by,omitempty"`

	PermissionSetCreatedAt time.Time      `gorm:"column:permission_set_created_at;autoCreateTime" json:"permission_set_created_at"`
	PermissionSetUpdatedAt time.Time      `gorm:"column:permission_set_updated_at;autoUpdateTime" json:"permission_set_updated_at"`
	PermissionSetDeletedAt gorm.DeletedAt `gorm:"column:permission_set_deleted_at;index" json:"permission_set_deleted_at,omitempty"`
}

func (PermissionSetModel) TableName() string {
	return "permission_sets"
}
