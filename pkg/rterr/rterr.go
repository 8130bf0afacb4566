// Package rterr defines the small error taxonomy the engine core
// exposes to callers: construction-time precondition failures
// (ErrInvalidArgument) and lifecycle misuse (ErrInvalidState). Callers
// use errors.Is to test for these; wrapped messages add the specifics.
package rterr

import "errors"

// ErrInvalidArgument marks a construction-time precondition failure:
// zero-scale transform, empty mesh, zero-dimensioned image, a
// texture/material pairing that cannot be satisfied.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidState marks a lifecycle misuse: starting a render while
// workers are still running, or swapping the scene mid-render.
var ErrInvalidState = errors.New("invalid state")
