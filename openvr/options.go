package openvr

import (
	"runtime"
	"strings"
)

// ApplicationType is the EVRApplicationType passed to the runtime at
// startup.
type ApplicationType int32

// Application types. Utility starts no compositor and needs no headset,
// which is all render model access requires.
const (
	ApplicationOther      ApplicationType = 0
	ApplicationScene      ApplicationType = 1
	ApplicationOverlay    ApplicationType = 2
	ApplicationBackground ApplicationType = 3
	ApplicationUtility    ApplicationType = 4
)

// RenderModelsVersion is the interface version requested from the runtime.
const RenderModelsVersion = "IVRRenderModels_006"

// Slots of VR_IVRRenderModels_FnTable, in declaration order.
const (
	slotLoadRenderModelAsync = 0
	slotFreeRenderModel      = 1
	slotLoadTextureAsync     = 2
	slotFreeTexture          = 3
	slotGetRenderModelName   = 7
	slotGetRenderModelCount  = 8
)

// Option configures Init.
type Option func(*config)

type config struct {
	libraries []string
	appType   ApplicationType
}

func defaultConfig() config {
	return config{
		libraries: libraryNames(runtime.GOOS),
		appType:   ApplicationUtility,
	}
}

// WithLibrary opens the shared library at path instead of searching the
// platform default names.
func WithLibrary(path string) Option {
	return func(c *config) {
		if path != "" {
			c.libraries = []string{path}
		}
	}
}

// WithApplicationType sets the application type reported to the runtime.
// The default is ApplicationUtility.
func WithApplicationType(t ApplicationType) Option {
	return func(c *config) {
		c.appType = t
	}
}

// libraryNames returns the shared library names tried for goos, most
// specific first.
func libraryNames(goos string) []string {
	switch goos {
	case "windows":
		return []string{"openvr_api.dll"}
	case "darwin":
		return []string{"libopenvr_api.dylib", "OpenVR.framework/OpenVR"}
	default:
		return []string{"libopenvr_api.so", "libopenvr_api.so.1"}
	}
}

// fnTableName is the name VR_GetGenericInterface expects for the C
// function table of an interface version.
func fnTableName(version string) string {
	return "FnTable:" + version
}

// cString returns s as a NUL-terminated byte slice. It reports false if s
// contains a NUL byte, which C would silently truncate at.
func cString(s string) ([]byte, bool) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, false
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, true
}
