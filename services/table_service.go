package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

// TableService menangani operasi meja termasuk alur seat/finish
type TableService struct {
	db *gorm.DB
}

// NewTableService membuat instance baru TableService
func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

// Create menyimpan meja baru (payload sudah divalidasi middleware)
func (s *TableService) Create(table *models.Table) error {
	return s.db.Create(table).Error
}

// List -> seluruh meja urut nama
func (s *TableService) List() ([]models.Table, error) {
	tables := make([]models.Table, 0)
	err := s.db.Order("table_name asc").Find(&tables).Error
	return tables, err
}

// Read mengambil satu meja berdasarkan ID
func (s *TableService) Read(id uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("Table %d not found", id)
		}
		return nil, err
	}
	return &table, nil
}

// Seat mendudukkan reservasi di meja. Pemeriksaan dan kedua penulisan
// (occupancy meja + status reservasi) berjalan dalam satu transaksi:
// commit bersama atau batal bersama.
func (s *TableService) Seat(tableID, reservationID uint) (*models.Table, error) {
	var table models.Table

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("Table %d not found", tableID)
			}
			return err
		}

		if table.IsOccupied() {
			return utils.BadRequest("Table is occupied")
		}

		var reservation models.Reservation
		if err := lockForUpdate(tx).First(&reservation, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("Reservation %d does not exist", reservationID)
			}
			return err
		}

		if table.Capacity < reservation.People {
			return utils.BadRequest("Table does not have sufficient capacity")
		}

		if reservation.Status == models.ReservationStatusSeated {
			return utils.BadRequest("Reservation is already seated")
		}

		if err := tx.Model(&table).Update("reservation_id", reservationID).Error; err != nil {
			return err
		}
		if err := tx.Model(&reservation).Update("status", models.ReservationStatusSeated).Error; err != nil {
			return err
		}

		table.ReservationID = &reservation.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// Finish mengosongkan meja dan menandai reservasinya selesai, juga
// dalam satu transaksi.
func (s *TableService) Finish(tableID uint) (*models.Table, error) {
	var table models.Table

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("Table %d not found", tableID)
			}
			return err
		}

		if !table.IsOccupied() {
			return utils.BadRequest("Table %d is not occupied", tableID)
		}

		reservationID := *table.ReservationID
		if err := tx.Model(&table).Update("reservation_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Reservation{}).
			Where("id = ?", reservationID).
			Update("status", models.ReservationStatusFinished).Error; err != nil {
			return err
		}

		table.ReservationID = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// lockForUpdate menambah SELECT ... FOR UPDATE di MySQL agar dua seat
// bersamaan ke meja yang sama tersusun berurutan. SQLite tidak punya
// sintaks itu dan memang menserialisasi penulis.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
