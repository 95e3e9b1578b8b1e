package models

import (
	"bytes"
	"database/sql"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// POI is one row of the 'yamap_pois' / 'yamareco_pois' tables as selected by
// the POI endpoint (raw_remote_id AS id, name, lat, lon, elevation_m).
type POI struct {
	ID         sql.NullString  `db:"id"`
	Name       sql.NullString  `db:"name"`
	Lat        float64         `db:"lat"`
	Lon        float64         `db:"lon"`
	ElevationM sql.NullFloat64 `db:"elevation_m"`
}

// --- GeoJSON (RFC 7946) ---

const (
	TypeFeature           = "Feature"
	TypeFeatureCollection = "FeatureCollection"
	TypePoint             = "Point"
)

// Position is a GeoJSON position, [lon, lat].
type Position [2]float64

func (p Position) MarshalJSON() ([]byte, error) {
	b := append([]byte{'['}, floatLiteral(p[0])...)
	b = append(b, ',')
	b = append(b, floatLiteral(p[1])...)
	return append(b, ']'), nil
}

// PointGeometry is a GeoJSON Point.
type PointGeometry struct {
	Type        string   `json:"type"`
	Coordinates Position `json:"coordinates"`
}

type FeatureProperties struct {
	Name      *string       `json:"name"`
	Elevation NullableFloat `json:"elevation"`
	ID        FeatureID     `json:"id"`
}

type Feature struct {
	Type       string            `json:"type"`
	Geometry   PointGeometry     `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureCollection is the response body of the POI endpoint. Error is only
// set when the query failed, in which case Features is empty.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
	Error    string    `json:"error,omitempty"`
}

// NewPointFeature converts a POI row into a GeoJSON Point feature.
func NewPointFeature(p POI) Feature {
	f := Feature{
		Type: TypeFeature,
		Geometry: PointGeometry{
			Type:        TypePoint,
			Coordinates: Position{p.Lon, p.Lat},
		},
		Properties: FeatureProperties{
			Elevation: NullableFloat{Float64: p.ElevationM.Float64, Valid: p.ElevationM.Valid},
			ID:        FeatureID{Raw: p.ID.String, Valid: p.ID.Valid},
		},
	}
	if p.Name.Valid {
		name := p.Name.String
		f.Properties.Name = &name
	}
	return f
}

// NewFeatureCollection wraps features, rendering a nil slice as [].
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: TypeFeatureCollection, Features: features}
}

// NewErrorFeatureCollection is the envelope returned when the database fails.
func NewErrorFeatureCollection(msg string) FeatureCollection {
	fc := NewFeatureCollection(nil)
	fc.Error = msg
	return fc
}

// NullableFloat is a float that encodes as JSON null when not Valid, and
// always as a float literal (1200.0, not 1200) when it is.
type NullableFloat struct {
	Float64 float64
	Valid   bool
}

func (n NullableFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return floatLiteral(n.Float64), nil
}

// floatLiteral writes f with at least one decimal (138.0, not 138).
// Non-finite values have no JSON form and become null.
func floatLiteral(f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null")
	}
	b := strconv.AppendFloat(nil, f, 'f', -1, 64)
	if !strings.ContainsRune(string(b), '.') {
		b = append(b, '.', '0')
	}
	return b
}

// FeatureID is the remote identifier as the driver returned it. Numeric
// looking values are encoded as JSON numbers, everything else as a string.
type FeatureID struct {
	Raw   string
	Valid bool
}

func (id FeatureID) MarshalJSON() ([]byte, error) {
	if !id.Valid {
		return []byte("null"), nil
	}
	s := strings.TrimSpace(id.Raw)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.AppendInt(nil, i, 10), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(id.Raw); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
