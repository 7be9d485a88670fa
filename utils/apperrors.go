package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain error taxonomy. Services return these; handlers translate them to
// HTTP responses via HTTPStatus.

// NotFoundError signals that a referenced attraction, review or user does
// not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// BadRequestError signals a malformed identifier or a missing/invalid field.
type BadRequestError struct {
	Reason string
}

func (e BadRequestError) Error() string { return e.Reason }

// ForbiddenError signals that the authenticated caller does not own the
// resource being modified.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string { return e.Reason }

// ConflictError signals a uniqueness invariant violation: a duplicate user
// review, a duplicate external key, or a duplicate account email.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string { return e.Reason }

// GatewayError signals that the external places provider was unreachable or
// returned an unexpected status.
type GatewayError struct {
	Err error
}

func (e GatewayError) Error() string { return "places gateway: " + e.Err.Error() }
func (e GatewayError) Unwrap() error { return e.Err }

// StoreError signals an underlying persistence failure.
type StoreError struct {
	Err error
}

func (e StoreError) Error() string { return "store: " + e.Err.Error() }
func (e StoreError) Unwrap() error { return e.Err }

// HTTPStatus maps a domain error to its HTTP status code.
func HTTPStatus(err error) int {
	var (
		notFound   NotFoundError
		badRequest BadRequestError
		forbidden  ForbiddenError
		conflict   ConflictError
		gateway    GatewayError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &gateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
