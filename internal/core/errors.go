package core

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the user. Every typed error below matches
// exactly one of them through errors.Is.
var (
	ErrLoad             = errors.New("image could not be loaded")
	ErrDevice           = errors.New("camera unavailable")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrMissingImage     = errors.New("no image loaded")
)

// LoadError reports a path that is unreadable or not a decodable image.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// DeviceError reports a camera that cannot be opened or read.
type DeviceError struct {
	Device int
	Err    error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("camera %d: %v", e.Device, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

func (e *DeviceError) Is(target error) bool { return target == ErrDevice }

// ParameterError reports a missing or unparseable user-entered field.
type ParameterError struct {
	Field string
	Value string
	Err   error
}

func (e *ParameterError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParameterError) Unwrap() error { return e.Err }

func (e *ParameterError) Is(target error) bool { return target == ErrInvalidParameter }
