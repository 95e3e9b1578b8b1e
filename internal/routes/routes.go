package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/poi-geojson/internal/handlers"
	"github.com/01moynul/poi-geojson/internal/metrics"
	"github.com/01moynul/poi-geojson/internal/middleware"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	// --- Metrics (Prometheus scrape) ---
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// --- POI GeoJSON (Public, any origin) ---
	// /pois.php keeps map pages built against the old script working.
	pois := router.Group("/")
	pois.Use(middleware.CORSMiddleware())
	{
		for _, path := range []string{"/pois", "/pois.php", "/v1/pois"} {
			pois.GET(path, h.GetPOIs)
			pois.OPTIONS(path, func(c *gin.Context) {})
		}
	}

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})
	}

	return router
}
