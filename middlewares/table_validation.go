package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

// Context key untuk payload meja yang sudah lolos validasi
const TableDataKey = "tableData"

type TablePayload struct {
	TableName string      `json:"table_name"`
	Capacity  interface{} `json:"capacity"`
}

// ValidateTable memeriksa payload pembuatan meja
func ValidateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Data TablePayload `json:"data"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.BadRequest("Invalid JSON payload"))
			c.Abort()
			return
		}
		data := body.Data

		if strings.TrimSpace(data.TableName) == "" {
			utils.RespondError(c, utils.BadRequest("Table must include a table_name"))
			c.Abort()
			return
		}
		if data.Capacity == nil || data.Capacity == float64(0) {
			utils.RespondError(c, utils.BadRequest("Table must include a capacity"))
			c.Abort()
			return
		}

		if len(data.TableName) < 2 {
			utils.RespondError(c, utils.BadRequest("Table must include a table_name with at least 2 characters"))
			c.Abort()
			return
		}

		capacity, ok := data.Capacity.(float64)
		if !ok || capacity < 1 {
			utils.RespondError(c, utils.BadRequest("Table must include a valid capacity"))
			c.Abort()
			return
		}

		c.Set(TableDataKey, models.Table{
			TableName: data.TableName,
			Capacity:  int(capacity),
		})
		c.Next()
	}
}
