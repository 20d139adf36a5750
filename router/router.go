package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/controllers"
	"github.com/yeremiapane/reservation-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global per IP; harus dipasang sebelum route
	// terdaftar karena gin merangkai handler saat registrasi
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Inisialisasi controller
	reservationCtrl := controllers.NewReservationController(db)
	tableCtrl := controllers.NewTableController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	strict := middlewares.NewStrictRateLimiter()

	reservations := r.Group("/reservations")
	{
		reservations.POST("", strict, middlewares.ValidateReservation(nil), reservationCtrl.CreateReservation)
		reservations.GET("", reservationCtrl.ListReservations)
		reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
		reservations.PUT("/:reservation_id", strict, middlewares.ValidateReservation(nil), reservationCtrl.UpdateReservation)
		reservations.PUT("/:reservation_id/status", strict, reservationCtrl.UpdateReservationStatus)
	}

	tables := r.Group("/tables")
	{
		tables.POST("", strict, middlewares.ValidateTable(), tableCtrl.CreateTable)
		tables.GET("", tableCtrl.GetAllTables)
		tables.PUT("/:table_id/seat", strict, tableCtrl.SeatReservation)
		tables.DELETE("/:table_id/seat", strict, tableCtrl.FinishTable)
	}

	// Catch-all untuk path yang tidak dikenal
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Path not found: " + c.Request.URL.Path})
	})

	return r
}
