package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/router"
	"github.com/yeremiapane/reservation-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration menguji flow utama:
// 1. Buat meja & reservasi
// 2. Seat reservasi -> meja terisi, status seated
// 3. Seat kedua di meja sama -> ditolak (occupied)
// 4. Finish meja -> meja kosong, status finished
// 5. Reservasi finished hilang dari list tanggal & tidak bisa diedit
// 6. Meja bisa diduduki lagi setelah finish
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB()
	r := router.SetupRouter(db)

	date := futureReservationDate()

	tableID := createTableTest(t, r, "Bar #1", 4)
	firstID := createReservationTest(t, r, date, "18:00", "808-555-0140")
	secondID := createReservationTest(t, r, date, "19:00", "(202) 555-0123")

	// Seat reservasi pertama
	seatRes := doRequest(t, r, "PUT", fmt.Sprintf("/tables/%d/seat", tableID),
		gin.H{"data": gin.H{"reservation_id": firstID}})
	assert.Equal(t, http.StatusOK, seatRes.Code)
	assert.Equal(t, "seated", reservationStatus(t, r, firstID))

	// Meja sudah terisi
	conflictRes := doRequest(t, r, "PUT", fmt.Sprintf("/tables/%d/seat", tableID),
		gin.H{"data": gin.H{"reservation_id": secondID}})
	assert.Equal(t, http.StatusBadRequest, conflictRes.Code)
	assert.Contains(t, bodyError(t, conflictRes), "occupied")

	// Pencarian nomor telepon parsial tetap menemukan keduanya
	searchRes := doRequest(t, r, "GET", "/reservations?mobile_number=555", nil)
	assert.Equal(t, http.StatusOK, searchRes.Code)
	assert.Len(t, bodyDataArray(t, searchRes), 2)

	// Finish
	finishRes := doRequest(t, r, "DELETE", fmt.Sprintf("/tables/%d/seat", tableID), nil)
	assert.Equal(t, http.StatusOK, finishRes.Code)
	assert.Equal(t, "finished", reservationStatus(t, r, firstID))

	// List tanggal tidak lagi memuat yang finished
	listRes := doRequest(t, r, "GET", "/reservations?date="+date, nil)
	assert.Equal(t, http.StatusOK, listRes.Code)
	remaining := bodyDataArray(t, listRes)
	assert.Len(t, remaining, 1)

	// Reservasi finished terkunci
	statusRes := doRequest(t, r, "PUT", fmt.Sprintf("/reservations/%d/status", firstID),
		gin.H{"data": gin.H{"status": "booked"}})
	assert.Equal(t, http.StatusBadRequest, statusRes.Code)

	// Meja bisa dipakai lagi
	reseatRes := doRequest(t, r, "PUT", fmt.Sprintf("/tables/%d/seat", tableID),
		gin.H{"data": gin.H{"reservation_id": secondID}})
	assert.Equal(t, http.StatusOK, reseatRes.Code)
	assert.Equal(t, "seated", reservationStatus(t, r, secondID))
}

func TestPathNotFound(t *testing.T) {
	db := setupTestDB()
	r := router.SetupRouter(db)

	res := doRequest(t, r, "GET", "/no/such/path", nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Path not found: /no/such/path", bodyError(t, res))
}

// setupTestDB -> migrasi model di SQLite in-memory
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Reservation{}, &models.Table{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// futureReservationDate -> seminggu ke depan, geser sehari jika Selasa
func futureReservationDate() string {
	d := time.Now().AddDate(0, 0, 7)
	if d.Weekday() == time.Tuesday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func doRequest(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTableTest(t *testing.T, r *gin.Engine, name string, capacity int) uint {
	res := doRequest(t, r, "POST", "/tables", gin.H{
		"data": gin.H{"table_name": name, "capacity": capacity},
	})
	assert.Equal(t, http.StatusCreated, res.Code)
	data := bodyDataObject(t, res)
	return uint(data["table_id"].(float64))
}

func createReservationTest(t *testing.T, r *gin.Engine, date, reservationTime, mobile string) uint {
	res := doRequest(t, r, "POST", "/reservations", gin.H{
		"data": gin.H{
			"first_name":       "Rick",
			"last_name":        "Sanchez",
			"mobile_number":    mobile,
			"reservation_date": date,
			"reservation_time": reservationTime,
			"people":           2,
		},
	})
	assert.Equal(t, http.StatusCreated, res.Code)
	data := bodyDataObject(t, res)
	return uint(data["reservation_id"].(float64))
}

func reservationStatus(t *testing.T, r *gin.Engine, id uint) string {
	res := doRequest(t, r, "GET", fmt.Sprintf("/reservations/%d", id), nil)
	assert.Equal(t, http.StatusOK, res.Code)
	return bodyDataObject(t, res)["status"].(string)
}

func bodyDataObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response["data"].(map[string]interface{})
}

func bodyDataArray(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response["data"].([]interface{})
}

func bodyError(t *testing.T, w *httptest.ResponseRecorder) string {
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response["error"].(string)
}
