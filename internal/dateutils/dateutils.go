// Package dateutils resolves the date tokens found in statement files into
// calendar dates and formats dates for output.
package dateutils

import (
	"errors"
	"strings"
	"time"

	"fjacquet/bank-statement/internal/parsererror"
)

// Layouts understood by the parsers.
const (
	DateLayoutISO = "2006-01-02"
	// DateLayoutQFX is the date portion of an OFX datetime (YYYYMMDD).
	DateLayoutQFX = "20060102"
	// CSV layouts accept unpadded day and month numbers.
	DateLayoutCSVISO      = "2006-1-2"
	DateLayoutCSVEuropean = "2/1/2006"
	DateLayoutCSVUS       = "1/2/2006"
)

// CSVFormats is the ordered list of layouts tried for CSV dates. Day-first
// wins over month-first when both would match.
var CSVFormats = []string{
	DateLayoutCSVISO,
	DateLayoutCSVEuropean,
	DateLayoutCSVUS,
}

var errShortQfxDate = errors.New("expected at least 8 characters (YYYYMMDD)")

// ParseQfxDate resolves an OFX datetime such as "20251226120000.000[-5:EST]"
// to midnight UTC of its calendar day. Time of day and timezone are dropped.
func ParseQfxDate(raw string) (time.Time, error) {
	datePart := raw
	if i := strings.IndexAny(datePart, "[."); i >= 0 {
		datePart = datePart[:i]
	}
	datePart = strings.TrimSpace(datePart)

	if len(datePart) < 8 {
		return time.Time{}, &parsererror.DateError{Format: parsererror.DateFormatQFX, Value: raw, Err: errShortQfxDate}
	}

	t, err := time.Parse(DateLayoutQFX, datePart[:8])
	if err != nil {
		return time.Time{}, &parsererror.DateError{Format: parsererror.DateFormatQFX, Value: raw, Err: err}
	}
	return t, nil
}

// ParseCSVDate resolves a CSV date trying CSVFormats in order.
func ParseCSVDate(raw string) (time.Time, error) {
	dateStr := strings.TrimSpace(raw)
	for _, layout := range CSVFormats {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &parsererror.DateError{Format: parsererror.DateFormatCSV, Value: raw}
}

// FormatDate formats date with layout, defaulting to DateLayoutISO.
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}

// ToISODate formats date as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CompareDates returns -1, 0 or 1 comparing the calendar days of a and b.
func CompareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	switch {
	case da.Before(db):
		return -1
	case da.After(db):
		return 1
	}
	return 0
}
