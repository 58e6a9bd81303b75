// Package services defines the business logic for the product catalog, the
// price ledger, and credential issuance. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

var (
	// ErrLocationNotFound indicates that the referenced store location is not
	// part of the managed location catalog. Locations are never created from
	// the price-report path, so this is a hard failure there.
	ErrLocationNotFound = errors.New("location not found")

	// ErrProductNotFound indicates that no product with the requested SKU has
	// ever been cataloged.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidTag is returned when a reported price carries a tag outside
	// the recognized set (regular, sale, limit, multi).
	ErrInvalidTag = errors.New("tag must be one of: regular, sale, limit, multi")

	// ErrInvalidPrice is returned when a reported price is not a valid
	// non-negative decimal amount.
	ErrInvalidPrice = errors.New("price must be a non-negative decimal")
)
