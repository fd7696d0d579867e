package parser

import (
	"fmt"
	"strings"

	"sellersuite/internal/domain"
)

// ParseError reports that a workbook could not be understood by a portal strategy.
// It matches domain.ErrUnreadableFile under errors.Is.
type ParseError struct {
	Portal string
	Stage  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parser: %s: %v", e.Portal, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{domain.ErrUnreadableFile, e.Err}
}

// NewParseError wraps err with the portal and the stage that failed.
func NewParseError(portal, stage string, err error) *ParseError {
	return &ParseError{Portal: portal, Stage: stage, Err: err}
}

// UnsupportedPortalError reports a declared portal with no parsing strategy.
// It matches domain.ErrUnsupportedPortal under errors.Is.
type UnsupportedPortalError struct {
	Portal    string
	Supported []string
}

func (e *UnsupportedPortalError) Error() string {
	return fmt.Sprintf("portal %q is not yet supported; currently supporting: %s",
		e.Portal, strings.Join(e.Supported, ", "))
}

func (e *UnsupportedPortalError) Unwrap() error {
	return domain.ErrUnsupportedPortal
}
