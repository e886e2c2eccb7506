//go:build !((amd64 || arm64) && (windows || ((linux || darwin || freebsd) && !cgo)))

package openvr

import "github.com/gogpu/vrmodels"

// Runtime is an initialized OpenVR runtime. In this build it can never be
// created; see the package documentation.
type Runtime struct{}

// Init always fails with ErrUnsupported in this build.
func Init(...Option) (*Runtime, error) {
	return nil, ErrUnsupported
}

// IsRuntimeInstalled always fails with ErrUnsupported in this build.
func IsRuntimeInstalled(...Option) (bool, error) {
	return false, ErrUnsupported
}

// RenderModels returns nil.
func (r *Runtime) RenderModels() vrmodels.Interface { return nil }

// Library returns "".
func (r *Runtime) Library() string { return "" }

// IsHmdPresent returns false.
func (r *Runtime) IsHmdPresent() bool { return false }

// Close does nothing.
func (r *Runtime) Close() error { return nil }
