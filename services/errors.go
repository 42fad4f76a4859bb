package services

import (
	"errors"
	"strings"
)

var (
	ErrUnknownSection      = errors.New("unknown section")
	ErrUnknownField        = errors.New("unknown field")
	ErrUnknownAction       = errors.New("unsupported action")
	ErrRowNotFound         = errors.New("row not found")
	ErrRowRequired         = errors.New("row key required")
	ErrUnknownApprovalKind = errors.New("unknown approval kind")
	ErrUnknownIssuingBody  = errors.New("unknown issuing body")
	ErrSubchoicePending    = errors.New("issuing body must be selected first")
	ErrNoDetails           = errors.New("approval kind must be selected first")
	ErrUnknownLevel        = errors.New("unknown location level")
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrUnknownUtility      = errors.New("unknown utility bill type")
	ErrInvalidOption       = errors.New("value is not one of the offered options")
)

// MissingFieldsError blocks an action until every listed field has a value.
type MissingFieldsError struct {
	Message string
	Fields  []string
}

func (e *MissingFieldsError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

func missing(message string, fields map[string]string, order ...string) error {
	var absent []string
	for _, key := range order {
		if strings.TrimSpace(fields[key]) == "" {
			absent = append(absent, key)
		}
	}
	if len(absent) == 0 {
		return nil
	}
	return &MissingFieldsError{Message: message, Fields: absent}
}
