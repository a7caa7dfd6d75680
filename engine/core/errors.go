package core

import (
	"errors"
)

var (
	// ErrInvalidGeometryRequest is returned or logged when geometry generation
	// parameters fail validation (negative size, insufficient grid resolution,
	// negative corner vertex count). The failing call returns an empty result.
	ErrInvalidGeometryRequest = errors.New("invalid geometry request")
	ErrUnknown                = errors.New("unknown")
)
