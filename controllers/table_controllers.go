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

type TableController struct {
	service *services.TableService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{service: services.NewTableService(db)}
}

// CreateTable -> menambahkan meja baru
func (tc *TableController) CreateTable(c *gin.Context) {
	table := c.MustGet(middlewares.TableDataKey).(models.Table)

	if err := tc.service.Create(&table); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (capacity=%d)", table.TableName, table.Capacity)
	utils.RespondData(c, http.StatusCreated, table)
}

// GetAllTables -> menampilkan seluruh meja urut nama
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.service.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, tables)
}

// SeatReservation -> dudukkan reservasi di meja
func (tc *TableController) SeatReservation(c *gin.Context) {
	tableID, apiErr := parseTableID(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	var body struct {
		Data struct {
			ReservationID uint `json:"reservation_id"`
		} `json:"data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Data.ReservationID == 0 {
		utils.RespondError(c, utils.BadRequest("reservation_id is missing"))
		return
	}

	table, err := tc.service.Seat(tableID, body.Data.ReservationID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d seated at table %d", body.Data.ReservationID, table.ID)
	utils.RespondData(c, http.StatusOK, table)
}

// FinishTable -> kosongkan meja, reservasi jadi finished
func (tc *TableController) FinishTable(c *gin.Context) {
	tableID, apiErr := parseTableID(c)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	table, err := tc.service.Finish(tableID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d finished and cleared", table.ID)
	utils.RespondData(c, http.StatusOK, table)
}

func parseTableID(c *gin.Context) (uint, *utils.APIError) {
	idStr := c.Param("table_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, utils.NotFound("Table %s not found", idStr)
	}
	return uint(id), nil
}
