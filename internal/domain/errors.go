package domain

import "errors"

var (
	// ErrEmptyBuffer: a zero-length payload reached the recognition
	// step. Checked before any provider call.
	ErrEmptyBuffer = errors.New("image buffer is empty")

	// ErrEmptyDescription: the provider answered but produced no
	// usable text after trimming.
	ErrEmptyDescription = errors.New("provider returned no description")

	// ErrProviderFailure wraps rejections and malformed responses from
	// the vision provider.
	ErrProviderFailure = errors.New("vision provider call failed")
)
