package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/middlewares"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{service: services.NewReservationService(db)}
}

// CreateReservation -> buat reservasi baru (status awal selalu booked)
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	reservation := c.MustGet(middlewares.ReservationDataKey).(models.Reservation)

	if reservation.Status != "" && reservation.Status != models.ReservationStatusBooked {
		utils.RespondError(c, utils.BadRequest("Status %s is not valid for new reservations", reservation.Status))
		return
	}

	if err := rc.service.Create(&reservation); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created for %s %s on %s %s",
		reservation.ID, reservation.FirstName, reservation.LastName,
		reservation.ReservationDate, reservation.ReservationTime)
	utils.RespondData(c, http.StatusCreated, reservation)
}

// ListReservations -> per tanggal, atau pencarian nomor telepon
func (rc *ReservationController) ListReservations(c *gin.Context) {
	date := c.Query("date")
	mobileNumber := c.Query("mobile_number")

	reservations, err := rc.service.List(date, mobileNumber)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, reservations)
}

// GetReservationByID -> detail satu reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, apiErr := parseReservationID(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation, err := rc.service.Read(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, reservation)
}

// UpdateReservation -> edit field reservasi (hanya saat booked)
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, apiErr := parseReservationID(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	fields := c.MustGet(middlewares.ReservationDataKey).(models.Reservation)

	reservation, err := rc.service.Update(id, fields)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d updated", reservation.ID)
	utils.RespondData(c, http.StatusOK, reservation)
}

// UpdateReservationStatus -> timpa status lewat endpoint status
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, apiErr := parseReservationID(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	var body struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.BadRequest("Status %s is not valid", body.Data.Status))
		return
	}

	reservation, err := rc.service.UpdateStatus(id, body.Data.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d status changed to %s", reservation.ID, reservation.Status)
	utils.RespondData(c, http.StatusOK, reservation)
}

func parseReservationID(c *gin.Context) (uint, *utils.APIError) {
	idStr := c.Param("reservation_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, utils.NotFound("Reservation %s not found", idStr)
	}
	return uint(id), nil
}
