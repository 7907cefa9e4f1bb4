package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid.
	// It is surfaced immediately and never triggers an upstream call.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrFoodNotFound is returned when a food id does not resolve upstream.
	ErrFoodNotFound = errors.New("food not found in FoodData Central")

	// ErrUpstreamFailure is returned when the FDC API request fails or
	// returns a non-success status.
	ErrUpstreamFailure = errors.New("FoodData Central request failed")

	// ErrMalformedRecord is returned when an upstream record is missing its
	// identity fields (fdcId, description).
	ErrMalformedRecord = errors.New("malformed upstream food record")

	// ErrSessionNotFound is returned when a session id is unknown.
	ErrSessionNotFound = errors.New("session not found")

	// ErrProfileNotFound is returned when no profile is stored under a key.
	ErrProfileNotFound = errors.New("profile not found")
)
