//go:build (amd64 || arm64) && (windows || ((linux || darwin || freebsd) && !cgo))

package openvr

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/go-webgpu/goffi/types"

	"github.com/gogpu/vrmodels"
)

// renderModels calls through the runtime's VR_IVRRenderModels_FnTable.
type renderModels struct {
	closed atomic.Bool

	loadModel   *fn
	freeModel   *fn
	loadTexture *fn
	freeTexture *fn
	name        *fn
	count       *fn
}

var _ vrmodels.Interface = (*renderModels)(nil)

func newRenderModels(table unsafe.Pointer) (*renderModels, error) {
	ptr, i32, u32 := types.PointerTypeDescriptor, types.SInt32TypeDescriptor, types.UInt32TypeDescriptor
	void := types.VoidTypeDescriptor

	m := &renderModels{}
	slots := []struct {
		index int
		dst   **fn
		ret   *types.TypeDescriptor
		args  []*types.TypeDescriptor
	}{
		{slotLoadRenderModelAsync, &m.loadModel, i32, []*types.TypeDescriptor{ptr, ptr}},
		{slotFreeRenderModel, &m.freeModel, void, []*types.TypeDescriptor{ptr}},
		{slotLoadTextureAsync, &m.loadTexture, i32, []*types.TypeDescriptor{i32, ptr}},
		{slotFreeTexture, &m.freeTexture, void, []*types.TypeDescriptor{ptr}},
		{slotGetRenderModelName, &m.name, u32, []*types.TypeDescriptor{u32, ptr, u32}},
		{slotGetRenderModelCount, &m.count, u32, nil},
	}

	for _, s := range slots {
		addr := *(*unsafe.Pointer)(unsafe.Add(table, s.index*int(unsafe.Sizeof(uintptr(0)))))
		if addr == nil {
			return nil, fmt.Errorf("%w: empty slot %d", ErrInterfaceNotFound, s.index)
		}
		f, err := prepare(addr, s.ret, s.args...)
		if err != nil {
			return nil, fmt.Errorf("openvr: prepare slot %d: %w", s.index, err)
		}
		*s.dst = f
	}
	return m, nil
}

func (m *renderModels) RenderModelCount() uint32 {
	if m.closed.Load() {
		return 0
	}
	var n uint32
	m.count.call(unsafe.Pointer(&n))
	return n
}

func (m *renderModels) RenderModelName(index uint32, buf []byte) uint32 {
	if m.closed.Load() {
		return 0
	}
	var bufPtr unsafe.Pointer
	if len(buf) > 0 {
		bufPtr = unsafe.Pointer(&buf[0])
	}
	size := uint32(len(buf))

	var n uint32
	m.name.call(unsafe.Pointer(&n), unsafe.Pointer(&index), unsafe.Pointer(&bufPtr), unsafe.Pointer(&size))
	runtime.KeepAlive(buf)
	return n
}

func (m *renderModels) LoadRenderModelAsync(name string) (unsafe.Pointer, vrmodels.ErrorCode) {
	if m.closed.Load() {
		return nil, vrmodels.ErrorNotSupported
	}
	cname, ok := cString(name)
	if !ok {
		return nil, vrmodels.ErrorInvalidArg
	}
	namePtr := unsafe.Pointer(&cname[0])

	var (
		model unsafe.Pointer
		code  int32
	)
	out := unsafe.Pointer(&model)
	m.loadModel.call(unsafe.Pointer(&code), unsafe.Pointer(&namePtr), unsafe.Pointer(&out))
	runtime.KeepAlive(cname)
	return model, vrmodels.ErrorCode(code)
}

func (m *renderModels) FreeRenderModel(model unsafe.Pointer) {
	if m.closed.Load() || model == nil {
		return
	}
	m.freeModel.call(nil, unsafe.Pointer(&model))
}

func (m *renderModels) LoadTextureAsync(id vrmodels.TextureID) (unsafe.Pointer, vrmodels.ErrorCode) {
	if m.closed.Load() {
		return nil, vrmodels.ErrorNotSupported
	}

	var (
		texture unsafe.Pointer
		code    int32
	)
	tid := int32(id)
	out := unsafe.Pointer(&texture)
	m.loadTexture.call(unsafe.Pointer(&code), unsafe.Pointer(&tid), unsafe.Pointer(&out))
	return texture, vrmodels.ErrorCode(code)
}

func (m *renderModels) FreeTexture(texture unsafe.Pointer) {
	if m.closed.Load() || texture == nil {
		return
	}
	m.freeTexture.call(nil, unsafe.Pointer(&texture))
}
