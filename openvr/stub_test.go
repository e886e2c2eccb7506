//go:build !((amd64 || arm64) && (windows || ((linux || darwin || freebsd) && !cgo)))

package openvr

import (
	"errors"
	"testing"
)

func TestStubUnsupported(t *testing.T) {
	rt, err := Init()
	if rt != nil || !errors.Is(err, ErrUnsupported) {
		t.Errorf("Init() = %v, %v; want nil, ErrUnsupported", rt, err)
	}
	if _, err := IsRuntimeInstalled(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("IsRuntimeInstalled() error = %v, want ErrUnsupported", err)
	}
}
