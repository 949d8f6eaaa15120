package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var exportHeader = []interface{}{
	"id", "name", "map_url", "img_url", "location", "seats",
	"has_toilet", "has_wifi", "has_sockets", "can_take_calls", "coffee_price",
}

// ExportCafes writes the whole catalog as an xlsx workbook, one cafe per row.
func (ctl *CafeController) ExportCafes(c *gin.Context) {
	cafes, err := ctl.repo.FindAll(c.Request.Context())
	if err != nil {
		ctl.log.Error("cafe export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Database error"})
		return
	}

	xl := excelize.NewFile()
	defer xl.Close()

	const sheet = "Sheet1"
	if err := xl.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		ctl.log.Error("cafe export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Export error"})
		return
	}

	for i, cafe := range cafes {
		price := ""
		if cafe.CoffeePrice != nil {
			price = *cafe.CoffeePrice
		}
		row := []interface{}{
			cafe.ID, cafe.Name, cafe.MapURL, cafe.ImgURL, cafe.Location, cafe.Seats,
			cafe.HasToilet, cafe.HasWifi, cafe.HasSockets, cafe.CanTakeCalls, price,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			ctl.log.Error("cafe export failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"errors": "Export error"})
			return
		}
		if err := xl.SetSheetRow(sheet, cell, &row); err != nil {
			ctl.log.Error("cafe export failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"errors": "Export error"})
			return
		}
	}

	c.Header("Content-Disposition", `attachment; filename="cafes.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xl.Write(c.Writer); err != nil {
		ctl.log.Error("cafe export write failed", zap.Error(err))
	}
}
