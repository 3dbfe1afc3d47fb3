// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var reMonth = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Jakarta dipakai untuk stempel waktu yang tampil di situs.
// Fallback ke UTC bila tzdata tidak tersedia di container.
func Jakarta() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.UTC
}

func NowJakarta() time.Time {
	return time.Now().In(Jakarta())
}

// ParseDate: "YYYY-MM-DD" → time.Time (UTC, jam 00:00).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal %q harus format YYYY-MM-DD", s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// IsValidMonth: "YYYY-MM" dengan bulan 01..12.
func IsValidMonth(s string) bool {
	return reMonth.MatchString(strings.TrimSpace(s))
}

// MonthRange mengembalikan [awal bulan, awal bulan berikutnya).
func MonthRange(month string) (time.Time, time.Time, error) {
	month = strings.TrimSpace(month)
	if !IsValidMonth(month) {
		return time.Time{}, time.Time{}, fmt.Errorf("bulan %q harus format YYYY-MM", month)
	}
	start, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}
