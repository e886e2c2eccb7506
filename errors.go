package vrmodels

import (
	"errors"
	"fmt"
	"strconv"
)

// Package errors.
var (
	// ErrClosed is returned when loading a texture from a RenderModel that
	// has already been closed.
	ErrClosed = errors.New("vrmodels: render model is closed")

	// ErrNilResource is returned when the driver reports success but hands
	// back no block. Nothing is owned, so nothing is released.
	ErrNilResource = errors.New("vrmodels: driver returned success without a resource")

	// ErrCatalogChanged is the panic value (wrapped) raised when the two
	// calls of the name protocol disagree on the name length.
	ErrCatalogChanged = errors.New("vrmodels: render model name size changed between calls")

	// ErrInvalidName is the panic value (wrapped) raised when the driver
	// returns a render model name that is not valid UTF-8.
	ErrInvalidName = errors.New("vrmodels: render model name is not valid UTF-8")
)

// ErrorCode is a status value of the render models interface
// (EVRRenderModelError). ErrorCode implements error so that codes can be
// returned and matched directly:
//
//	if errors.Is(err, vrmodels.ErrorInvalidModel) { ... }
type ErrorCode int32

// Status codes reported by the driver.
const (
	ErrorNone               ErrorCode = 0
	ErrorLoading            ErrorCode = 100
	ErrorNotSupported       ErrorCode = 200
	ErrorInvalidArg         ErrorCode = 300
	ErrorInvalidModel       ErrorCode = 301
	ErrorNoShapes           ErrorCode = 302
	ErrorMultipleShapes     ErrorCode = 303
	ErrorTooManyVertices    ErrorCode = 304
	ErrorMultipleTextures   ErrorCode = 305
	ErrorBufferTooSmall     ErrorCode = 306
	ErrorNotEnoughNormals   ErrorCode = 307
	ErrorNotEnoughTexCoords ErrorCode = 308
	ErrorInvalidTexture     ErrorCode = 400
)

var errorNames = map[ErrorCode]string{
	ErrorNone:               "None",
	ErrorLoading:            "Loading",
	ErrorNotSupported:       "NotSupported",
	ErrorInvalidArg:         "InvalidArg",
	ErrorInvalidModel:       "InvalidModel",
	ErrorNoShapes:           "NoShapes",
	ErrorMultipleShapes:     "MultipleShapes",
	ErrorTooManyVertices:    "TooManyVertices",
	ErrorMultipleTextures:   "MultipleTextures",
	ErrorBufferTooSmall:     "BufferTooSmall",
	ErrorNotEnoughNormals:   "NotEnoughNormals",
	ErrorNotEnoughTexCoords: "NotEnoughTexCoords",
	ErrorInvalidTexture:     "InvalidTexture",
}

// String returns the name of the code without the VRRenderModelError_ prefix.
func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// Error implements the error interface.
func (c ErrorCode) Error() string {
	return fmt.Sprintf("vrmodels: render model error %s (%d)", c.String(), int32(c))
}

// IsLoading reports whether c means the driver is still loading the
// resource in the background.
func (c ErrorCode) IsLoading() bool {
	return c == ErrorLoading
}

// Status is the outcome class of an ErrorCode.
type Status uint8

const (
	// StatusSuccess means the call produced its resource.
	StatusSuccess Status = iota

	// StatusLoading means the driver has not finished loading; poll again.
	StatusLoading

	// StatusFailure means the call failed for good.
	StatusFailure
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusLoading:
		return "Loading"
	case StatusFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Classify maps every code to exactly one Status. Codes outside the known
// set are failures.
func Classify(c ErrorCode) Status {
	switch c {
	case ErrorNone:
		return StatusSuccess
	case ErrorLoading:
		return StatusLoading
	default:
		return StatusFailure
	}
}

// IsLoading reports whether err carries ErrorLoading. It is the retry
// predicate of the blocking loaders.
func IsLoading(err error) bool {
	var code ErrorCode
	return errors.As(err, &code) && code.IsLoading()
}
