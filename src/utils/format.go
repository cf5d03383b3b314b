package utils

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DateLayout = "2006-01-02"

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders a Rupiah display value with no decimals. Rounding
// happens here only, never inside aggregation.
func FormatRupiah(v float64) string {
	return rupiahPrinter.Sprintf("Rp%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// Nama bulan Indonesia, index 0 = Januari.
var monthShort = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

var monthLong = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthLabels returns the twelve month labels for the annual recap.
func MonthLabels() []string {
	labels := make([]string, len(monthLong))
	copy(labels, monthLong)
	return labels
}

// DayMonthLabel builds the localized "2 Jan" label for a daily bucket.
// Unparseable dates pass through untouched.
func DayMonthLabel(isoDate string) string {
	t, err := time.Parse(DateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return rupiahPrinter.Sprintf("%d %s", t.Day(), monthShort[int(t.Month())-1])
}

// Today returns the local calendar date in ISO form.
func Today() string {
	return time.Now().Format(DateLayout)
}
