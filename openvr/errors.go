package openvr

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrUnsupported is returned when the binding is not available in this
	// build (cgo enabled on a Unix system, or an unsupported architecture).
	ErrUnsupported = errors.New("openvr: runtime binding not supported in this build")

	// ErrLibraryNotFound is returned when no OpenVR shared library could be
	// opened.
	ErrLibraryNotFound = errors.New("openvr: openvr_api library not found")

	// ErrNotInitialized matches InitErrorNotInitialized through errors.Is.
	// Calls on a closed Runtime do not return it: its render models table
	// reports vrmodels.ErrorNotSupported and its queries return zero values.
	ErrNotInitialized = errors.New("openvr: runtime not initialized")

	// ErrInterfaceNotFound is returned when the runtime does not provide
	// the render models function table.
	ErrInterfaceNotFound = errors.New("openvr: render models interface not found")
)

// InitError is an EVRInitError code reported by the runtime.
type InitError int32

// EVRInitError values reported during startup.
const (
	InitErrorNone                       InitError = 0
	InitErrorUnknown                    InitError = 1
	InitErrorInstallationNotFound       InitError = 100
	InitErrorInstallationCorrupt        InitError = 101
	InitErrorVRClientDLLNotFound        InitError = 102
	InitErrorFileNotFound               InitError = 103
	InitErrorFactoryNotFound            InitError = 104
	InitErrorInterfaceNotFound          InitError = 105
	InitErrorInvalidInterface           InitError = 106
	InitErrorUserConfigDirectoryInvalid InitError = 107
	InitErrorHmdNotFound                InitError = 108
	InitErrorNotInitialized             InitError = 109
	InitErrorPathRegistryNotFound       InitError = 110
	InitErrorNoConfigPath               InitError = 111
	InitErrorNoLogPath                  InitError = 112
)

var initErrorNames = map[InitError]string{
	InitErrorNone:                       "None",
	InitErrorUnknown:                    "Unknown",
	InitErrorInstallationNotFound:       "InstallationNotFound",
	InitErrorInstallationCorrupt:        "InstallationCorrupt",
	InitErrorVRClientDLLNotFound:        "VRClientDLLNotFound",
	InitErrorFileNotFound:               "FileNotFound",
	InitErrorFactoryNotFound:            "FactoryNotFound",
	InitErrorInterfaceNotFound:          "InterfaceNotFound",
	InitErrorInvalidInterface:           "InvalidInterface",
	InitErrorUserConfigDirectoryInvalid: "UserConfigDirectoryInvalid",
	InitErrorHmdNotFound:                "HmdNotFound",
	InitErrorNotInitialized:             "NotInitialized",
	InitErrorPathRegistryNotFound:       "PathRegistryNotFound",
	InitErrorNoConfigPath:               "NoConfigPath",
	InitErrorNoLogPath:                  "NoLogPath",
}

// String returns the EVRInitError name without its prefix.
func (e InitError) String() string {
	if name, ok := initErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("InitError(%d)", int32(e))
}

// Error implements the error interface.
func (e InitError) Error() string {
	return fmt.Sprintf("openvr: init error %s (%d)", e.String(), int32(e))
}

// Is reports whether target is the sentinel matching this code.
func (e InitError) Is(target error) bool {
	switch e {
	case InitErrorNotInitialized:
		return target == ErrNotInitialized
	case InitErrorInterfaceNotFound, InitErrorInvalidInterface:
		return target == ErrInterfaceNotFound
	}
	return false
}
