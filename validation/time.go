package validation

import (
	"regexp"
	"time"

	"github.com/yeremiapane/reservation-app/utils"
)

// Jam operasional restoran (konstanta, bukan per meja)
const (
	OpeningTime = "10:30"
	ClosingTime = "21:30"
)

var timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// Pesan kesalahan untuk aturan waktu
const (
	ErrPastDateTime  = "Reservation must be for a future time"
	ErrBeforeOpening = "Reservation must be after opening time (10:30 AM)"
	ErrAfterClosing  = "Reservation must be before closing time (9:30 PM)"
)

// IsValidTime -> true hanya untuk HH:MM 24 jam dua digit (00-23 / 00-59).
// "1:30" tidak diterima.
func IsValidTime(s string) bool {
	return timeRegex.MatchString(s)
}

// ValidateReservationTime memeriksa gabungan tanggal+jam terhadap now.
// Urutan pemeriksaan: sudah lewat, sebelum buka, setelah tutup. Batas
// 10:30 dan 21:30 sendiri diterima.
func ValidateReservationTime(date, timeStr string, now time.Time) error {
	reservationAt, err := time.ParseInLocation(dateLayout+" 15:04", date+" "+timeStr, now.Location())
	if err != nil {
		return errBadRequest(ErrPastDateTime)
	}

	opening, _ := time.ParseInLocation(dateLayout+" 15:04", date+" "+OpeningTime, now.Location())
	closing, _ := time.ParseInLocation(dateLayout+" 15:04", date+" "+ClosingTime, now.Location())

	if !reservationAt.After(now) {
		return errBadRequest(ErrPastDateTime)
	}
	if reservationAt.Before(opening) {
		return errBadRequest(ErrBeforeOpening)
	}
	if reservationAt.After(closing) {
		return errBadRequest(ErrAfterClosing)
	}

	return nil
}

func errBadRequest(message string) error {
	return utils.BadRequest("%s", message)
}
