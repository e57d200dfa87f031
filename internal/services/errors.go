package services

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed or missing input. It carries enough
// detail for the caller to correct the request: either the offending field
// names or, for enumerated values, the accepted set.
type ValidationError struct {
	Message      string
	Fields       []string // Missing or invalid field names
	ValidOptions []string // Accepted values, when the input is an enumeration
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Fields, ", "))
	}
	if len(e.ValidOptions) > 0 {
		msg = fmt.Sprintf("%s (valid options: %s)", msg, strings.Join(e.ValidOptions, ", "))
	}
	return msg
}
