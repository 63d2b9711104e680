package service

import (
	"math"
	"time"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/attendance/model"
)

/* =========================================
   Marking window rules
   ========================================= */

// CanModifyAttendance decides whether an actor may write attendance for
// requestedDate at the instant now. Admin and principal may always write
// any date. A teacher may only write today's records, and only while the
// marking window is open. Everyone else is denied.
//
// Must be evaluated at write time: now keeps moving between the page
// load and the submit.
func CanModifyAttendance(actorRole string, requestedDate, now time.Time, window configs.AttendanceWindowConfig) bool {
	switch actorRole {
	case constants.RoleAdmin, constants.RolePrincipal:
		return true
	case constants.RoleTeacher:
		if !sameCalendarDay(requestedDate, now) {
			return false
		}
		return window.Contains(now)
	default:
		return false
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

/* =========================================
   Aggregation
   ========================================= */

type AttendanceSummary struct {
	Present    int  `json:"present"`
	Absent     int  `json:"absent"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Low        bool `json:"low"`
}

// Aggregate folds one student's marks into a summary. An empty record
// set yields percentage 0 (0/0 is defined as 0, never a division error).
func Aggregate(records []model.AttendanceModel, thresholdPct int) AttendanceSummary {
	summary := AttendanceSummary{}
	for _, rec := range records {
		switch rec.AttendanceStatus {
		case model.AttendanceStatusPresent:
			summary.Present++
		case model.AttendanceStatusAbsent:
			summary.Absent++
		}
	}
	summary.Total = summary.Present + summary.Absent
	if summary.Total > 0 {
		summary.Percentage = int(math.Round(100 * float64(summary.Present) / float64(summary.Total)))
	}
	summary.Low = summary.Percentage < thresholdPct
	return summary
}
