package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/01moynul/poi-geojson/internal/logging"
)

const ContentTypeGeoJSON = "application/geo+json; charset=utf-8"

// writeGeoJSON encodes v without HTML or unicode escaping and sends it as
// application/geo+json, whatever the status.
func writeGeoJSON(c *gin.Context, status int, v interface{}) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		logging.Error().Err(err).Msg("failed to encode GeoJSON response")
		c.Data(http.StatusInternalServerError, ContentTypeGeoJSON, []byte(`{"error":"failed to encode response"}`))
		return
	}

	c.Data(status, ContentTypeGeoJSON, bytes.TrimRight(buf.Bytes(), "\n"))
}
