//go:build (amd64 || arm64) && (windows || ((linux || darwin || freebsd) && !cgo))

package openvr

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/types"

	"github.com/gogpu/vrmodels"
)

// Runtime is an initialized OpenVR runtime.
//
// The runtime is process wide: initialize it once and Close it when done.
// Close every RenderModel and Texture obtained through RenderModels before
// closing the Runtime, since their memory belongs to the runtime.
type Runtime struct {
	mu       sync.Mutex
	lib      *library
	shutdown *fn
	hmd      *fn
	models   *renderModels
}

// Init loads the openvr_api library, starts the runtime and fetches the
// render models function table.
func Init(opts ...Option) (*Runtime, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	lib, err := openLibrary(c.libraries)
	if err != nil {
		return nil, err
	}

	rt, err := start(lib, c.appType)
	if err != nil {
		lib.close()
		return nil, err
	}

	vrmodels.Logger().Info("openvr: runtime initialized", "library", lib.path, "interface", RenderModelsVersion)
	return rt, nil
}

func start(lib *library, appType ApplicationType) (*Runtime, error) {
	ptr, i32 := types.PointerTypeDescriptor, types.SInt32TypeDescriptor

	initInternal, err := lib.symbol("VR_InitInternal2", ptr, ptr, i32, ptr)
	if err != nil {
		return nil, err
	}
	getInterface, err := lib.symbol("VR_GetGenericInterface", ptr, ptr, ptr)
	if err != nil {
		return nil, err
	}
	shutdown, err := lib.symbol("VR_ShutdownInternal", types.VoidTypeDescriptor)
	if err != nil {
		return nil, err
	}
	hmd, err := lib.symbol("VR_IsHmdPresent", types.UInt8TypeDescriptor)
	if err != nil {
		return nil, err
	}

	var (
		code    InitError
		token   uintptr
		startup unsafe.Pointer
	)
	codePtr := unsafe.Pointer(&code)
	at := int32(appType)
	initInternal.call(unsafe.Pointer(&token),
		unsafe.Pointer(&codePtr), unsafe.Pointer(&at), unsafe.Pointer(&startup))
	if code != InitErrorNone {
		return nil, code
	}

	name, _ := cString(fnTableName(RenderModelsVersion))
	namePtr := unsafe.Pointer(&name[0])
	var table unsafe.Pointer
	getInterface.call(unsafe.Pointer(&table), unsafe.Pointer(&namePtr), unsafe.Pointer(&codePtr))
	runtime.KeepAlive(name)

	if code != InitErrorNone || table == nil {
		shutdown.call(nil)
		if code != InitErrorNone {
			return nil, fmt.Errorf("%w: %w", ErrInterfaceNotFound, code)
		}
		return nil, fmt.Errorf("%w: %s", ErrInterfaceNotFound, RenderModelsVersion)
	}

	models, err := newRenderModels(table)
	if err != nil {
		shutdown.call(nil)
		return nil, err
	}

	return &Runtime{lib: lib, shutdown: shutdown, hmd: hmd, models: models}, nil
}

// RenderModels returns the runtime's render models table. It stops
// answering once the Runtime is closed: the catalog reads as empty and
// loads fail with ErrorNotSupported.
func (r *Runtime) RenderModels() vrmodels.Interface {
	return r.models
}

// Library returns the path of the loaded openvr_api library.
func (r *Runtime) Library() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lib == nil {
		return ""
	}
	return r.lib.path
}

// IsHmdPresent reports whether a headset is connected. It returns false
// after Close.
func (r *Runtime) IsHmdPresent() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lib == nil {
		return false
	}
	var present uint8
	r.hmd.call(unsafe.Pointer(&present))
	return present != 0
}

// Close shuts the runtime down and unloads the library. It is safe to call
// more than once.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lib == nil {
		return nil
	}
	r.models.closed.Store(true)
	r.shutdown.call(nil)

	err := r.lib.close()
	r.lib = nil
	if err != nil {
		vrmodels.Logger().Warn("openvr: unloading library failed", "err", err)
		return fmt.Errorf("openvr: close: %w", err)
	}
	vrmodels.Logger().Info("openvr: runtime shut down")
	return nil
}
