package vrmodels

import "unsafe"

// TextureID identifies a texture in the driver (TextureID_t).
type TextureID int32

// Interface is the render models entry-point table of the VR runtime
// (IVRRenderModels). It is supplied by the caller, for example by
// openvr.Runtime.RenderModels or vrtest.Driver, and is only borrowed: it must
// stay valid for as long as any RenderModels value or handle created from it
// is in use.
//
// Blocks returned by the two load methods are owned by the driver and must be
// handed back exactly once through the matching free method. RenderModel and
// Texture take care of that; callers of this package never see the raw
// pointers.
//
// Implementations must be safe for concurrent use if the RenderModels value
// built on them is used from several goroutines; this package adds no
// locking of its own.
type Interface interface {
	// RenderModelCount returns the number of models in the catalog.
	RenderModelCount() uint32

	// RenderModelName copies the NUL-terminated name of the model at index
	// into buf and returns the number of bytes written, terminator
	// included. With an empty buf it returns the required size instead.
	// A return of 0 means the index has no name.
	RenderModelName(index uint32, buf []byte) uint32

	// LoadRenderModelAsync starts or polls loading of the named model. On
	// ErrorNone it returns a RenderModel_t block.
	LoadRenderModelAsync(name string) (unsafe.Pointer, ErrorCode)

	// FreeRenderModel releases a block returned by LoadRenderModelAsync.
	FreeRenderModel(model unsafe.Pointer)

	// LoadTextureAsync starts or polls loading of a texture. On ErrorNone
	// it returns a RenderModel_TextureMap_t block.
	LoadTextureAsync(id TextureID) (unsafe.Pointer, ErrorCode)

	// FreeTexture releases a block returned by LoadTextureAsync.
	FreeTexture(texture unsafe.Pointer)
}
