package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestInitDBSetOnce(t *testing.T) {
	first, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	second, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	InitDB(first)
	assert.Same(t, first, GetDB())

	// Koneksi pertama yang menang; pemanggilan berikutnya diabaikan
	InitDB(second)
	assert.Same(t, first, GetDB())
}
