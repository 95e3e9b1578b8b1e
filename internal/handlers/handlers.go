package handlers

import (
	"github.com/01moynul/poi-geojson/internal/database"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	// ClientConfigPath is the MySQL option file read on every request.
	ClientConfigPath string
	// OpenDB opens the request-scoped connection (database.OpenDBWithDSN in production).
	OpenDB database.Opener
	// HideDBErrors replaces raw driver messages in responses with a generic one.
	HideDBErrors bool
}

// New wires the handlers to the real MySQL driver.
func New(clientConfigPath string, hideDBErrors bool) *Handlers {
	return &Handlers{
		ClientConfigPath: clientConfigPath,
		OpenDB:           database.OpenDBWithDSN,
		HideDBErrors:     hideDBErrors,
	}
}
