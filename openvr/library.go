//go:build (amd64 || arm64) && (windows || ((linux || darwin || freebsd) && !cgo))

package openvr

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// fn is a C function address bound to its prepared call interface.
type fn struct {
	cif  types.CallInterface
	addr unsafe.Pointer
}

func prepare(addr unsafe.Pointer, ret *types.TypeDescriptor, args ...*types.TypeDescriptor) (*fn, error) {
	f := &fn{addr: addr}
	if err := ffi.PrepareCallInterface(&f.cif, types.DefaultCall, ret, args); err != nil {
		return nil, err
	}
	return f, nil
}

// call invokes f. Each element of args points at the argument value; ret
// points at storage for the result and is nil for void functions.
//
// CallFunction only fails on an unprepared interface or a nil address, both
// of which prepare rules out, so a failure here panics.
func (f *fn) call(ret unsafe.Pointer, args ...unsafe.Pointer) {
	if err := ffi.CallFunction(&f.cif, f.addr, ret, args); err != nil {
		panic(fmt.Errorf("openvr: foreign call failed: %w", err))
	}
}

// library is an opened openvr_api shared library.
type library struct {
	handle unsafe.Pointer
	path   string
}

// openLibrary opens the first of names that loads.
func openLibrary(names []string) (*library, error) {
	var errs []error
	for _, name := range names {
		h, err := ffi.LoadLibrary(name)
		if err == nil {
			return &library{handle: h, path: name}, nil
		}
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.Join(errs...))
}

func (l *library) symbol(name string, ret *types.TypeDescriptor, args ...*types.TypeDescriptor) (*fn, error) {
	addr, err := ffi.GetSymbol(l.handle, name)
	if err != nil {
		return nil, fmt.Errorf("openvr: %s: %w", name, err)
	}
	f, err := prepare(addr, ret, args...)
	if err != nil {
		return nil, fmt.Errorf("openvr: prepare %s: %w", name, err)
	}
	return f, nil
}

func (l *library) close() error {
	return ffi.FreeLibrary(l.handle)
}

// IsRuntimeInstalled reports whether the OpenVR runtime is installed on
// this machine. It needs the openvr_api library but does not start the
// runtime.
func IsRuntimeInstalled(opts ...Option) (bool, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	lib, err := openLibrary(c.libraries)
	if err != nil {
		return false, err
	}
	defer lib.close()

	installed, err := lib.symbol("VR_IsRuntimeInstalled", types.UInt8TypeDescriptor)
	if err != nil {
		return false, err
	}
	var ok uint8
	installed.call(unsafe.Pointer(&ok))
	return ok != 0, nil
}
