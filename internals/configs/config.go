package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	JWTRefreshSecret  string
	GoogleClientID    string
	MidtransServerKey string

	// AttendanceWindow is the daily interval in which teachers may mark
	// attendance. Admin and principal are never window-gated.
	AttendanceWindow AttendanceWindowConfig

	// LowAttendanceThreshold is the default percentage below which a
	// student is flagged. Callers may override per request (40–90).
	LowAttendanceThreshold int
)

// =======================
// ATTENDANCE WINDOW
// =======================

// AttendanceWindowConfig holds the marking window as clock bounds,
// local time. Both bounds are inclusive.
type AttendanceWindowConfig struct {
	OpenHour, OpenMinute   int
	CloseHour, CloseMinute int
}

func (w AttendanceWindowConfig) OpenMinutes() int  { return w.OpenHour*60 + w.OpenMinute }
func (w AttendanceWindowConfig) CloseMinutes() int { return w.CloseHour*60 + w.CloseMinute }

// Contains reports whether the clock part of t falls inside the window.
func (w AttendanceWindowConfig) Contains(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	return m >= w.OpenMinutes() && m <= w.CloseMinutes()
}

// parseClock parses "HH:MM". Invalid input returns ok=false.
func parseClock(s string) (h, m int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// =======================
// ENV LOADER
// =======================

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET is not set!")
	}

	// The marking window ships as 08:40–14:50. Deployments that want the
	// legacy full-day behaviour set ATTENDANCE_WINDOW_OPEN=00:00 and
	// ATTENDANCE_WINDOW_CLOSE=23:59 instead of patching code.
	AttendanceWindow = AttendanceWindowConfig{OpenHour: 8, OpenMinute: 40, CloseHour: 14, CloseMinute: 50}
	if h, m, ok := parseClock(GetEnv("ATTENDANCE_WINDOW_OPEN")); ok {
		AttendanceWindow.OpenHour, AttendanceWindow.OpenMinute = h, m
	}
	if h, m, ok := parseClock(GetEnv("ATTENDANCE_WINDOW_CLOSE")); ok {
		AttendanceWindow.CloseHour, AttendanceWindow.CloseMinute = h, m
	}

	LowAttendanceThreshold = 75
	if v, err := strconv.Atoi(GetEnv("LOW_ATTENDANCE_THRESHOLD")); err == nil && v >= 40 && v <= 90 {
		LowAttendanceThreshold = v
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
