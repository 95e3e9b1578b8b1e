package pois

import (
	"context"
	"database/sql"

	"github.com/01moynul/poi-geojson/internal/models"
)

// Repository runs the fixed POI queries against an open database handle.
type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// List runs the dataset's query and returns at most MaxFeatures rows in the
// order the database produced them (id descending).
func (r *Repository) List(ctx context.Context, dataset Dataset) ([]models.POI, error) {
	rows, err := r.DB.QueryContext(ctx, dataset.Query())
	if err != nil {
		return nil, &DatabaseError{Stage: StageQuery, Err: err}
	}
	defer rows.Close()

	pois := make([]models.POI, 0, MaxFeatures)
	for rows.Next() {
		if len(pois) == MaxFeatures {
			break
		}

		var p models.POI
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lon, &p.ElevationM); err != nil {
			return nil, &DatabaseError{Stage: StageScan, Err: err}
		}
		pois = append(pois, p)
	}

	if err := rows.Err(); err != nil {
		return nil, &DatabaseError{Stage: StageRows, Err: err}
	}

	return pois, nil
}

// ListFeatures is List mapped through models.NewPointFeature.
func (r *Repository) ListFeatures(ctx context.Context, dataset Dataset) ([]models.Feature, error) {
	pois, err := r.List(ctx, dataset)
	if err != nil {
		return nil, err
	}

	features := make([]models.Feature, 0, len(pois))
	for _, p := range pois {
		features = append(features, models.NewPointFeature(p))
	}
	return features, nil
}
