package services

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

var nonDigits = regexp.MustCompile(`\D`)

// ReservationService menangani operasi entitas reservasi
type ReservationService struct {
	db *gorm.DB
}

// NewReservationService membuat instance baru ReservationService
func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// Create menyimpan reservasi baru. Status selalu dipaksa "booked";
// penolakan status lain sudah terjadi di controller.
func (s *ReservationService) Create(reservation *models.Reservation) error {
	reservation.Status = models.ReservationStatusBooked
	return s.db.Create(reservation).Error
}

// Read mengambil satu reservasi berdasarkan ID
func (s *ReservationService) Read(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("Reservation %d not found", id)
		}
		return nil, err
	}
	return &reservation, nil
}

// List -> reservasi per tanggal, tanpa yang sudah finished, urut jam.
// Jika mobileNumber terisi, tanggal diabaikan dan jatuh ke Search.
func (s *ReservationService) List(date, mobileNumber string) ([]models.Reservation, error) {
	if mobileNumber != "" {
		return s.Search(mobileNumber)
	}

	reservations := make([]models.Reservation, 0)
	err := s.db.
		Where("reservation_date = ?", date).
		Where("status <> ?", models.ReservationStatusFinished).
		Order("reservation_time asc").
		Find(&reservations).Error
	return reservations, err
}

// Search mencocokkan nomor telepon parsial. Query dan nomor tersimpan
// sama-sama dilucuti tanda bacanya; hasil urut tanggal reservasi.
// Hasil kosong bukan error.
func (s *ReservationService) Search(mobileNumber string) ([]models.Reservation, error) {
	digits := nonDigits.ReplaceAllString(mobileNumber, "")

	reservations := make([]models.Reservation, 0)
	err := s.db.
		Where(
			"REPLACE(REPLACE(REPLACE(REPLACE(mobile_number, '(', ''), ')', ''), '-', ''), ' ', '') LIKE ?",
			"%"+digits+"%",
		).
		Order("reservation_date asc").
		Find(&reservations).Error
	return reservations, err
}

// Update mengganti field yang bisa diubah. Hanya reservasi berstatus
// "booked" yang boleh diedit; status tidak ikut diubah lewat jalur ini.
func (s *ReservationService) Update(id uint, fields models.Reservation) (*models.Reservation, error) {
	reservation, err := s.Read(id)
	if err != nil {
		return nil, err
	}

	if reservation.Status != models.ReservationStatusBooked {
		return nil, utils.BadRequest("Only booked reservations can be edited")
	}

	reservation.FirstName = fields.FirstName
	reservation.LastName = fields.LastName
	reservation.MobileNumber = fields.MobileNumber
	reservation.ReservationDate = fields.ReservationDate
	reservation.ReservationTime = fields.ReservationTime
	reservation.People = fields.People

	if err := s.db.Save(reservation).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}

// UpdateStatus menimpa status reservasi lewat endpoint status langsung.
// Reservasi finished tidak bisa diubah lagi.
func (s *ReservationService) UpdateStatus(id uint, status string) (*models.Reservation, error) {
	if !models.IsValidReservationStatus(status) {
		return nil, utils.BadRequest("Status %s is not valid", status)
	}

	reservation, err := s.Read(id)
	if err != nil {
		return nil, err
	}

	if reservation.Status == models.ReservationStatusFinished {
		return nil, utils.BadRequest("A finished reservation cannot be updated")
	}

	reservation.Status = status
	if err := s.db.Save(reservation).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}
