package validation

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Pesan kesalahan untuk aturan tanggal
const (
	ErrPastDate  = "Reservation date must be in the future"
	ErrClosedDay = "Reservation cannot be made on a Tuesday (restaurant closed)"
)

// IsValidDate -> true hanya jika s berbentuk YYYY-MM-DD dan merupakan
// tanggal kalender nyata. Parse lalu format ulang harus menghasilkan
// string yang sama persis, sehingga "2023-02-30" ditolak.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}
	return d.Format(dateLayout) == s
}

// ValidateReservationDate memeriksa kebijakan tanggal reservasi terhadap
// "hari ini" menurut now. Jam diabaikan: yang dibandingkan hanya tanggal
// kalender. Nil berarti lolos.
func ValidateReservationDate(date string, now time.Time) error {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return errBadRequest(ErrPastDate)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	reservationDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())

	if reservationDay.Before(today) {
		return errBadRequest(ErrPastDate)
	}

	if d.Weekday() == time.Tuesday {
		return errBadRequest(ErrClosedDay)
	}

	return nil
}
