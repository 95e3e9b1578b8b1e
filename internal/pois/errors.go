package pois

import "fmt"

// Stages at which a DatabaseError can occur.
const (
	StageConnect = "connect"
	StageQuery   = "query"
	StageScan    = "scan"
	StageRows    = "rows"
)

// DatabaseError is any failure while talking to MySQL on behalf of a request.
type DatabaseError struct {
	Stage string
	Err   error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
