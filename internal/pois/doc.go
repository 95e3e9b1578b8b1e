// Package pois selects one of the crawled POI datasets and reads its rows.
package pois
