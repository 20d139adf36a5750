package middlewares

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
	"github.com/yeremiapane/reservation-app/validation"
)

// Context key untuk payload reservasi yang sudah lolos validasi
const ReservationDataKey = "reservationData"

// ReservationPayload -> isi amplop {"data": ...} dari klien.
// People bertipe interface{} supaya angka vs bukan-angka bisa
// dibedakan dan menghasilkan pesan yang tepat.
type ReservationPayload struct {
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	MobileNumber    string      `json:"mobile_number"`
	ReservationDate string      `json:"reservation_date"`
	ReservationTime string      `json:"reservation_time"`
	People          interface{} `json:"people"`
	Status          string      `json:"status"`
}

// ValidateReservation memeriksa payload reservasi sebelum handler
// berjalan. Pemeriksaan berhenti di kegagalan pertama. clock dipakai
// untuk aturan tanggal/jam lampau; nil berarti time.Now.
func ValidateReservation(clock func() time.Time) gin.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}

	return func(c *gin.Context) {
		var body struct {
			Data ReservationPayload `json:"data"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid JSON payload"))
			c.Abort()
			return
		}
		data := body.Data

		requiredFields := []struct {
			name  string
			empty bool
		}{
			{"first_name", strings.TrimSpace(data.FirstName) == ""},
			{"last_name", strings.TrimSpace(data.LastName) == ""},
			{"mobile_number", strings.TrimSpace(data.MobileNumber) == ""},
			{"reservation_date", strings.TrimSpace(data.ReservationDate) == ""},
			{"reservation_time", strings.TrimSpace(data.ReservationTime) == ""},
			{"people", data.People == nil || data.People == float64(0)},
		}
		for _, field := range requiredFields {
			if field.empty {
				utils.RespondError(c, utils.BadRequest("Reservation must include a %s", field.name))
				c.Abort()
				return
			}
		}

		people, ok := data.People.(float64)
		if !ok || people < 1 {
			utils.RespondError(c, utils.BadRequest("Reservation must include a valid number of people"))
			c.Abort()
			return
		}

		if !validation.IsValidDate(data.ReservationDate) {
			utils.RespondError(c, utils.BadRequest("Reservation must include a valid reservation_date"))
			c.Abort()
			return
		}

		if !validation.IsValidTime(data.ReservationTime) {
			utils.RespondError(c, utils.BadRequest("Reservation must include a valid reservation_time"))
			c.Abort()
			return
		}

		now := clock()
		if err := validation.ValidateReservationDate(data.ReservationDate, now); err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}
		if err := validation.ValidateReservationTime(data.ReservationDate, data.ReservationTime, now); err != nil {
			utils.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(ReservationDataKey, models.Reservation{
			FirstName:       data.FirstName,
			LastName:        data.LastName,
			MobileNumber:    data.MobileNumber,
			ReservationDate: data.ReservationDate,
			ReservationTime: data.ReservationTime,
			People:          int(people),
			Status:          data.Status,
		})
		c.Next()
	}
}
