package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/attendance/model"
)

var defaultWindow = configs.AttendanceWindowConfig{OpenHour: 8, OpenMinute: 40, CloseHour: 14, CloseMinute: 50}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.Local)
}

func TestCanModifyAttendance_TeacherWindowBoundaries(t *testing.T) {
	today := at(12, 0)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one minute before open", at(8, 39), false},
		{"exactly at open", at(8, 40), true},
		{"midday", at(12, 0), true},
		{"exactly at close", at(14, 50), true},
		{"one minute after close", at(14, 51), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanModifyAttendance(constants.RoleTeacher, today, tt.now, defaultWindow)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanModifyAttendance_TeacherOtherDayDenied(t *testing.T) {
	now := at(12, 0)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	assert.False(t, CanModifyAttendance(constants.RoleTeacher, yesterday, now, defaultWindow))
	assert.False(t, CanModifyAttendance(constants.RoleTeacher, tomorrow, now, defaultWindow))
}

func TestCanModifyAttendance_AdminAndPrincipalAlwaysAllowed(t *testing.T) {
	// well outside the window and not today
	now := at(3, 0)
	lastMonth := now.AddDate(0, -1, 0)

	assert.True(t, CanModifyAttendance(constants.RoleAdmin, lastMonth, now, defaultWindow))
	assert.True(t, CanModifyAttendance(constants.RolePrincipal, lastMonth, now, defaultWindow))
}

func TestCanModifyAttendance_OtherRolesDenied(t *testing.T) {
	now := at(12, 0)

	assert.False(t, CanModifyAttendance(constants.RoleStudent, now, now, defaultWindow))
	assert.False(t, CanModifyAttendance("guest", now, now, defaultWindow))
	assert.False(t, CanModifyAttendance("", now, now, defaultWindow))
}

func TestCanModifyAttendance_FullDayWindowConfig(t *testing.T) {
	fullDay := configs.AttendanceWindowConfig{OpenHour: 0, OpenMinute: 0, CloseHour: 23, CloseMinute: 59}

	for _, now := range []time.Time{at(0, 0), at(3, 17), at(14, 51), at(23, 59)} {
		assert.True(t, CanModifyAttendance(constants.RoleTeacher, now, now, fullDay),
			"teacher should be allowed at %s with a full-day window", now.Format("15:04"))
	}
}

func records(present, absent int) []model.AttendanceModel {
	out := make([]model.AttendanceModel, 0, present+absent)
	for i := 0; i < present; i++ {
		out = append(out, model.AttendanceModel{AttendanceStatus: model.AttendanceStatusPresent})
	}
	for i := 0; i < absent; i++ {
		out = append(out, model.AttendanceModel{AttendanceStatus: model.AttendanceStatusAbsent})
	}
	return out
}

func TestAggregate_EmptySet(t *testing.T) {
	got := Aggregate(nil, 75)

	assert.Equal(t, AttendanceSummary{Present: 0, Absent: 0, Total: 0, Percentage: 0, Low: true}, got)
}

func TestAggregate_Counts(t *testing.T) {
	tests := []struct {
		name            string
		present, absent int
		threshold       int
		wantPct         int
		wantLow         bool
	}{
		{"all present", 10, 0, 75, 100, false},
		{"all absent", 0, 10, 75, 0, true},
		{"three quarters at threshold", 3, 1, 75, 75, false},
		{"just below threshold", 74, 26, 75, 74, true},
		{"rounds up", 2, 1, 75, 67, true},
		{"rounds half up", 1, 1, 40, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(records(tt.present, tt.absent), tt.threshold)

			assert.Equal(t, tt.present, got.Present)
			assert.Equal(t, tt.absent, got.Absent)
			assert.Equal(t, tt.present+tt.absent, got.Total)
			assert.Equal(t, tt.wantPct, got.Percentage)
			assert.Equal(t, tt.wantLow, got.Low)
		})
	}
}

// low must always agree with percentage < threshold
func TestAggregate_LowLaw(t *testing.T) {
	for threshold := 40; threshold <= 90; threshold += 5 {
		for present := 0; present <= 20; present += 4 {
			for absent := 0; absent <= 20; absent += 4 {
				got := Aggregate(records(present, absent), threshold)
				assert.Equal(t, got.Percentage < threshold, got.Low,
					"present=%d absent=%d threshold=%d", present, absent, threshold)
			}
		}
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	set := records(7, 3)

	first := Aggregate(set, 75)
	second := Aggregate(set, 75)

	assert.Equal(t, first, second)
}

func TestAggregate_IgnoresUnknownStatus(t *testing.T) {
	set := append(records(2, 1), model.AttendanceModel{AttendanceStatus: "late"})

	got := Aggregate(set, 75)

	assert.Equal(t, 3, got.Total)
}
