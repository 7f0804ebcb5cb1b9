package demodata

import (
	"errors"
	"fmt"
)

var ErrOrganizationRequired = errors.New("organization id is required")

// StageError tags a persistence failure with the pipeline stage that raised
// it. The run halts on the first one; earlier writes stay in place.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
