package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound means an upstream authoritatively reported no matching data,
// as opposed to failing to answer at all.
var ErrNotFound = errors.New("not found")

// ValidationError is a missing or empty required input. The boundary maps
// it to a 400 before any provider is called.
type ValidationError struct{ Param string }

func (e *ValidationError) Error() string { return e.Param + " parameter is required" }

// UpstreamError is a transport failure, timeout, or unparsable provider
// response. Stage names the hop that failed ("weather", "geo", "hotels", ...).
// Its text is for server logs only; clients see the kind, not the cause.
type UpstreamError struct {
	Stage string
	Err   error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("upstream %s: %v", e.Stage, e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }
