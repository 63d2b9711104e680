package dto

import (
	"github.com/google/uuid"

	"campushub_backend/internals/features/users/permissions/service"
)

// ================== REQUEST ==================
type SetPermissionsRequest struct {
	UserID       uuid.UUID       `json:"user_id" validate:"required"`
	Capabilities map[string]bool `json:"capabilities" validate:"required"`
}

// ================== RESPONSE ==================
type PermissionSetResponse struct {
	UserID       uuid.UUID       `json:"user_id"`
	Capabilities map[string]bool `json:"capabilities"`
	Granted      []string        `json:"granted"`
}

// ================ CONVERSION =================
func ToPermissionSetResponse(userID uuid.UUID, set service.CapabilitySet) PermissionSetResponse {
	return PermissionSetResponse{
		UserID:       userID,
		Capabilities: map[string]bool(set),
		Granted:      set.Granted(),
	}
}
