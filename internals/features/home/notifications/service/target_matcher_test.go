package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/home/notifications/model"
)

func strPtr(s string) *string { return &s }

func broadcast(targetRole string, dept, year *string) *model.NotificationModel {
	return &model.NotificationModel{
		NotificationTargetRole: targetRole,
		NotificationTargetDept: dept,
		NotificationTargetYear: year,
	}
}

func TestIsVisible_DirectNotificationAlwaysVisible(t *testing.T) {
	me := Recipient{ID: uuid.New(), Role: constants.RoleStudent}

	// even with targeting that would otherwise exclude the recipient
	n := broadcast(model.NotificationTargetStaff, nil, nil)
	n.NotificationUserID = &me.ID

	ok, err := IsVisible(n, me)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsVisible_DirectNotificationForSomeoneElse(t *testing.T) {
	me := Recipient{ID: uuid.New(), Role: constants.RoleStudent}
	other := uuid.New()

	n := broadcast(model.NotificationTargetAll, nil, nil)
	n.NotificationUserID = &other

	ok, err := IsVisible(n, me)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsVisible_TargetAll(t *testing.T) {
	n := broadcast(model.NotificationTargetAll, nil, nil)

	for _, role := range []string{constants.RoleAdmin, constants.RolePrincipal, constants.RoleTeacher, constants.RoleStudent} {
		ok, err := IsVisible(n, Recipient{ID: uuid.New(), Role: role})
		require.NoError(t, err)
		assert.True(t, ok, "role %s should see target_role=all", role)
	}
}

func TestIsVisible_TargetStaffExcludesStudents(t *testing.T) {
	n := broadcast(model.NotificationTargetStaff, nil, nil)

	ok, err := IsVisible(n, Recipient{ID: uuid.New(), Role: constants.RoleStudent})
	require.NoError(t, err)
	assert.False(t, ok)

	for _, role := range []string{constants.RoleAdmin, constants.RolePrincipal, constants.RoleTeacher} {
		ok, err := IsVisible(n, Recipient{ID: uuid.New(), Role: role})
		require.NoError(t, err)
		assert.True(t, ok, "role %s should see target_role=staff", role)
	}
}

func TestIsVisible_TargetStudentWildcard(t *testing.T) {
	// nil dept/year is a wildcard: every student sees it
	n := broadcast(model.NotificationTargetStudent, nil, nil)

	ok, err := IsVisible(n, Recipient{ID: uuid.New(), Role: constants.RoleStudent, Department: "EE", Year: "4"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsVisible(n, Recipient{ID: uuid.New(), Role: constants.RoleTeacher})
	require.NoError(t, err)
	assert.False(t, ok, "staff never sees target_role=student")
}

func TestIsVisible_EmptyStringEqualsNull(t *testing.T) {
	student := Recipient{ID: uuid.New(), Role: constants.RoleStudent, Department: "CS", Year: "2"}

	withNil := broadcast(model.NotificationTargetStudent, nil, nil)
	withEmpty := broadcast(model.NotificationTargetStudent, strPtr(""), strPtr(""))

	okNil, err := IsVisible(withNil, student)
	require.NoError(t, err)
	okEmpty, err := IsVisible(withEmpty, student)
	require.NoError(t, err)

	assert.True(t, okNil)
	assert.True(t, okEmpty)
}

func TestIsVisible_DeptAndYearConstraints(t *testing.T) {
	cs2 := Recipient{ID: uuid.New(), Role: constants.RoleStudent, Department: "CS", Year: "2"}

	tests := []struct {
		name string
		n    *model.NotificationModel
		want bool
	}{
		{"matching dept and year", broadcast(model.NotificationTargetStudent, strPtr("CS"), strPtr("2")), true},
		{"matching dept, wildcard year", broadcast(model.NotificationTargetStudent, strPtr("CS"), nil), true},
		{"wrong dept", broadcast(model.NotificationTargetStudent, strPtr("EE"), nil), false},
		{"matching dept, wrong year", broadcast(model.NotificationTargetStudent, strPtr("CS"), strPtr("3")), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := IsVisible(tt.n, cs2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestIsVisible_UnknownTargetRoleFailsClosed(t *testing.T) {
	n := broadcast("everyone", nil, nil)

	ok, err := IsVisible(n, Recipient{ID: uuid.New(), Role: constants.RoleAdmin})

	assert.ErrorIs(t, err, ErrUnknownTarget)
	assert.False(t, ok)
}

// A CS second-year student looking at a mixed feed sees exactly the
// rows aimed at them.
func TestFilterVisible_MixedFeed(t *testing.T) {
	me := Recipient{ID: uuid.New(), Role: constants.RoleStudent, Department: "CS", Year: "2"}

	direct := model.NotificationModel{NotificationUserID: &me.ID, NotificationTitle: "fees due", NotificationTargetRole: model.NotificationTargetStudent}
	everyone := *broadcast(model.NotificationTargetAll, nil, nil)
	everyone.NotificationTitle = "campus closed"
	csOnly := *broadcast(model.NotificationTargetStudent, strPtr("CS"), nil)
	csOnly.NotificationTitle = "cs seminar"
	staffOnly := *broadcast(model.NotificationTargetStaff, nil, nil)
	eeOnly := *broadcast(model.NotificationTargetStudent, strPtr("EE"), nil)
	malformed := *broadcast("everyone", nil, nil)

	got := FilterVisible([]model.NotificationModel{direct, everyone, csOnly, staffOnly, eeOnly, malformed}, me)

	require.Len(t, got, 3)
	assert.Equal(t, "fees due", got[0].NotificationTitle)
	assert.Equal(t, "campus closed", got[1].NotificationTitle)
	assert.Equal(t, "cs seminar", got[2].NotificationTitle)
}
