package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Gideon1107/cafe-and-wifi-api/controller"
	"github.com/Gideon1107/cafe-and-wifi-api/observability"
)

// CafeRoutes registers every endpoint on the router.
func CafeRoutes(router *gin.Engine, ctl *controller.CafeController, metrics *observability.HTTPMetrics) {
	router.GET("/", ctl.Home)
	router.GET("/random", ctl.GetRandomCafe)
	router.GET("/all", ctl.GetAllCafes)
	router.GET("/search", ctl.SearchByLocation)
	router.GET("/add", ctl.AddCafeForm)
	router.POST("/add", ctl.AddCafe)
	router.PATCH("/update-price/:id", ctl.UpdatePrice)
	router.GET("/report-closed/:id", ctl.DeleteCafe)
	router.DELETE("/report-closed/:id", ctl.DeleteCafe)
	router.GET("/export", ctl.ExportCafes)
	router.GET("/health", ctl.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
