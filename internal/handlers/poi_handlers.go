package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/poi-geojson/internal/config"
	"github.com/01moynul/poi-geojson/internal/logging"
	"github.com/01moynul/poi-geojson/internal/metrics"
	"github.com/01moynul/poi-geojson/internal/middleware"
	"github.com/01moynul/poi-geojson/internal/models"
	"github.com/01moynul/poi-geojson/internal/pois"
)

const (
	configErrorMessage = "Configuration file (.my.cnf) not found or invalid"
	dbErrorPrefix      = "Database error"
)

// GetPOIs (Public) serves the latest POIs of a dataset as a GeoJSON FeatureCollection.
// GET /pois?db=yamareco|yamap
func (h *Handlers) GetPOIs(c *gin.Context) {
	dataset := pois.SelectDataset(c.Query("db"))
	requestID := middleware.GetRequestID(c)

	// 1. --- Load DB credentials (fresh on every request) ---
	cc, err := config.LoadClientConfig(h.ClientConfigPath)
	if err != nil {
		logging.Error().Err(err).
			Str("request_id", requestID).
			Str("path", h.ClientConfigPath).
			Msg("cannot load MySQL client config")
		metrics.RecordConfigError()
		h.respond(c, dataset, http.StatusInternalServerError, gin.H{"error": configErrorMessage})
		return
	}

	// 2. --- Connect (released on every path below) ---
	ctx := c.Request.Context()
	start := time.Now()

	db, err := h.OpenDB(ctx, cc.DSN())
	if err != nil {
		h.respondDBError(c, dataset, &pois.DatabaseError{Stage: pois.StageConnect, Err: err})
		return
	}
	defer db.Close()

	// 3. --- Run the dataset's fixed query ---
	features, err := pois.NewRepository(db).ListFeatures(ctx, dataset)
	if err != nil {
		h.respondDBError(c, dataset, err)
		return
	}

	metrics.RecordQuery(dataset.String(), time.Since(start), len(features))
	logging.Debug().
		Str("request_id", requestID).
		Str("dataset", dataset.String()).
		Int("features", len(features)).
		Msg("served POIs")

	// 4. --- Respond ---
	h.respond(c, dataset, http.StatusOK, models.NewFeatureCollection(features))
}

// respondDBError keeps the FeatureCollection shape so map clients can still
// parse the body.
func (h *Handlers) respondDBError(c *gin.Context, dataset pois.Dataset, err error) {
	stage := pois.StageQuery
	cause := err
	var dbErr *pois.DatabaseError
	if errors.As(err, &dbErr) {
		stage = dbErr.Stage
		cause = dbErr.Err
	}

	logging.Error().Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("dataset", dataset.String()).
		Str("stage", stage).
		Msg("POI query failed")
	metrics.RecordDBError(dataset.String(), stage)

	msg := dbErrorPrefix
	if !h.HideDBErrors {
		msg = dbErrorPrefix + ": " + cause.Error()
	}

	h.respond(c, dataset, http.StatusInternalServerError, models.NewErrorFeatureCollection(msg))
}

func (h *Handlers) respond(c *gin.Context, dataset pois.Dataset, status int, body interface{}) {
	metrics.RecordRequest(dataset.String(), status)
	writeGeoJSON(c, status, body)
}
