package volby

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMunicipalities is returned when a region page lists no municipalities,
	// usually meaning the link points somewhere else than a region overview.
	ErrNoMunicipalities = errors.New("no municipalities found on region page")
	ErrMissingAnchor    = errors.New("municipality row has no link")
)

// StatusError is returned when a page responds with anything other than 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// MissingCellError is returned when a municipality page lacks one of the
// summary cells.
type MissingCellError struct {
	Header string
}

func (e *MissingCellError) Error() string {
	return fmt.Sprintf("could not find cell with headers=%q", e.Header)
}
