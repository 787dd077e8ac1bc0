// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync"
	"time"
)

const (
	DefaultTimezone = "Asia/Dhaka"
	DateLayout      = "2006-01-02"
)

var (
	locMu    sync.RWMutex
	locCache = map[string]*time.Location{}
)

// Location: tz kampus dari config.
// Urutan: tz diminta → Asia/Dhaka → UTC.
func Location(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		tz = DefaultTimezone
	}

	locMu.RLock()
	loc, ok := locCache[tz]
	locMu.RUnlock()
	if ok {
		return loc
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		if tz != DefaultTimezone {
			return Location(DefaultTimezone)
		}
		loc = time.UTC
	}

	locMu.Lock()
	locCache[tz] = loc
	locMu.Unlock()
	return loc
}

// DateOf: tanggal kalender (00:00 UTC) dari t dilihat di loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today: "hari ini" versi kampus, format YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	return DateOf(now, loc).Format(DateLayout)
}

// ParseDate: terima "YYYY-MM-DD" atau RFC3339 (diambil tanggalnya saja).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t, t.Location()), nil
}
