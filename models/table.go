package models

import "time"

type Table struct {
	ID            uint         `gorm:"primaryKey" json:"table_id"`
	TableName     string       `gorm:"type:varchar(50);not null;index" json:"table_name"`
	Capacity      int          `gorm:"not null" json:"capacity"`
	ReservationID *uint        `gorm:"index" json:"reservation_id"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationID" json:"-"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null" json:"updated_at"`
}

// IsOccupied -> true jika meja sedang dipakai reservasi
func (t *Table) IsOccupied() bool {
	return t.ReservationID != nil
}
