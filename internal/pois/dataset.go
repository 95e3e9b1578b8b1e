package pois

// MaxFeatures caps every response, whatever the table size.
const MaxFeatures = 100

// Dataset identifies one of the crawled POI tables.
type Dataset string

const (
	DatasetYamap    Dataset = "yamap"
	DatasetYamareco Dataset = "yamareco"
)

// Both statements are static. The dataset selector only picks one of them and
// never contributes text to the SQL.
const (
	yamarecoQuery = `
SELECT raw_remote_id AS id, name, lat, lon, elevation_m
FROM yamareco_pois
WHERE JSON_CONTAINS(poi_type_raw, 1)
  AND lat IS NOT NULL AND lon IS NOT NULL
ORDER BY id DESC
LIMIT 100`

	yamapQuery = `
SELECT raw_remote_id AS id, name, lat, lon, elevation_m
FROM yamap_pois
WHERE poi_type_raw IN ("19", "999")
  AND lat IS NOT NULL AND lon IS NOT NULL
ORDER BY id DESC
LIMIT 100`
)

// SelectDataset maps the ?db= query value to a dataset. Anything other than
// "yamareco", including the empty string, selects yamap.
func SelectDataset(name string) Dataset {
	if name == string(DatasetYamareco) {
		return DatasetYamareco
	}
	return DatasetYamap
}

// Query returns the fixed SELECT statement for the dataset.
func (d Dataset) Query() string {
	if d == DatasetYamareco {
		return yamarecoQuery
	}
	return yamapQuery
}

// Table returns the table the dataset reads from.
func (d Dataset) Table() string {
	if d == DatasetYamareco {
		return "yamareco_pois"
	}
	return "yamap_pois"
}

func (d Dataset) String() string {
	return string(d)
}
