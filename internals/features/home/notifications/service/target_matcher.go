package service

import (
	"errors"

	"github.com/google/uuid"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/home/notifications/model"
)

// ErrUnknownTarget marks a notification whose target_role is outside the
// known set. Such notifications are never shown to anyone.
var ErrUnknownTarget = errors.New("unknown notification target role")

// Recipient is the view of a user the matcher needs.
type Recipient struct {
	ID         uuid.UUID
	Role       string
	Department string
	Year       string
}

/* =========================================
   Visibility rules, checked in order:
   1. direct notification to this user     -> visible
   2. target_role all                      -> visible
   3. target_role staff                    -> visible unless recipient is a student
   4. target_role student                  -> visible to students matching dept/year
   5. anything else                        -> not visible (fail closed)
   ========================================= */

// IsVisible reports whether the notification should be shown to the
// recipient. Null and empty-string targeting fields are both wildcards.
func IsVisible(n *model.NotificationModel, r Recipient) (bool, error) {
	if n.NotificationUserID != nil && *n.NotificationUserID == r.ID {
		return true, nil
	}
	// A direct notification addressed to somebody else never broadcasts.
	if n.NotificationUserID != nil {
		return false, nil
	}

	switch n.NotificationTargetRole {
	case model.NotificationTargetAll:
		return true, nil
	case model.NotificationTargetStaff:
		return r.Role != constants.RoleStudent, nil
	case model.NotificationTargetStudent:
		if r.Role != constants.RoleStudent {
			return false, nil
		}
		if !matchesConstraint(n.NotificationTargetDept, r.Department) {
			return false, nil
		}
		if !matchesConstraint(n.NotificationTargetYear, r.Year) {
			return false, nil
		}
		return true, nil
	default:
		return false, ErrUnknownTarget
	}
}

// matchesConstraint treats nil and "" identically as "no constraint".
func matchesConstraint(target *string, value string) bool {
	if target == nil || *target == "" {
		return true
	}
	return *target == value
}

// FilterVisible keeps the notifications the recipient may see. Rows with
// an unknown target role are dropped silently.
func FilterVisible(notifications []model.NotificationModel, r Recipient) []model.NotificationModel {
	visible := make([]model.NotificationModel, 0, len(notifications))
	for i := range notifications {
		ok, err := IsVisible(&notifications[i], r)
		if err != nil || !ok {
			continue
		}
		visible = append(visible, notifications[i])
	}
	return visible
}
