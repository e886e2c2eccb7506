// Package abi describes the C memory layout of the OpenVR render-model
// structures and reads or writes them field by field.
//
// openvr.h declares RenderModel_t and RenderModel_TextureMap_t under
// #pragma pack(4) on Linux and macOS and #pragma pack(8) on Windows, so the
// pointer fields are not always 8-byte aligned and the structures cannot be
// mirrored by a Go struct. Offsets live in layout_pack4.go and layout_pack8.go.
package abi

import "unsafe"

// VertexSize is sizeof(RenderModel_Vertex_t): position, normal and texture
// coordinate, all float32.
const VertexSize = 32

// IndexSize is the size of one triangle index (uint16_t).
const IndexSize = 2

// Model is the decoded header of a RenderModel_t block.
type Model struct {
	Vertices      unsafe.Pointer // const RenderModel_Vertex_t *rVertexData
	VertexCount   uint32
	Indices       unsafe.Pointer // const uint16_t *rIndexData
	TriangleCount uint32
	TextureID     int32
}

// TextureMap is the decoded header of a RenderModel_TextureMap_t block.
type TextureMap struct {
	Width     uint16
	Height    uint16
	Data      unsafe.Pointer // const uint8_t *rubTextureMapData
	Format    int32
	MipLevels uint16
}

// ReadModel decodes the RenderModel_t at p.
func ReadModel(p unsafe.Pointer) Model {
	return Model{
		Vertices:      loadPointer(p, modelVerticesOffset),
		VertexCount:   *(*uint32)(unsafe.Add(p, modelVertexCountOffset)),
		Indices:       loadPointer(p, modelIndicesOffset),
		TriangleCount: *(*uint32)(unsafe.Add(p, modelTriangleCountOffset)),
		TextureID:     *(*int32)(unsafe.Add(p, modelTextureIDOffset)),
	}
}

// WriteModel encodes m into the RenderModel_t at p, which must be at least
// ModelSize bytes.
func WriteModel(p unsafe.Pointer, m Model) {
	storePointer(p, modelVerticesOffset, m.Vertices)
	*(*uint32)(unsafe.Add(p, modelVertexCountOffset)) = m.VertexCount
	storePointer(p, modelIndicesOffset, m.Indices)
	*(*uint32)(unsafe.Add(p, modelTriangleCountOffset)) = m.TriangleCount
	*(*int32)(unsafe.Add(p, modelTextureIDOffset)) = m.TextureID
}

// ReadTextureMap decodes the RenderModel_TextureMap_t at p.
func ReadTextureMap(p unsafe.Pointer) TextureMap {
	return TextureMap{
		Width:     *(*uint16)(unsafe.Add(p, textureWidthOffset)),
		Height:    *(*uint16)(unsafe.Add(p, textureHeightOffset)),
		Data:      loadPointer(p, textureDataOffset),
		Format:    *(*int32)(unsafe.Add(p, textureFormatOffset)),
		MipLevels: *(*uint16)(unsafe.Add(p, textureMipLevelsOffset)),
	}
}

// WriteTextureMap encodes t into the RenderModel_TextureMap_t at p, which
// must be at least TextureMapSize bytes.
func WriteTextureMap(p unsafe.Pointer, t TextureMap) {
	*(*uint16)(unsafe.Add(p, textureWidthOffset)) = t.Width
	*(*uint16)(unsafe.Add(p, textureHeightOffset)) = t.Height
	storePointer(p, textureDataOffset, t.Data)
	*(*int32)(unsafe.Add(p, textureFormatOffset)) = t.Format
	*(*uint16)(unsafe.Add(p, textureMipLevelsOffset)) = t.MipLevels
}

// loadPointer reads a possibly misaligned pointer field. The value goes
// through an aligned uintptr so no misaligned *unsafe.Pointer is ever formed.
func loadPointer(p unsafe.Pointer, off uintptr) unsafe.Pointer {
	u := *(*uintptr)(unsafe.Add(p, off))
	return *(*unsafe.Pointer)(unsafe.Pointer(&u))
}

func storePointer(p unsafe.Pointer, off uintptr, v unsafe.Pointer) {
	*(*uintptr)(unsafe.Add(p, off)) = uintptr(v)
}

// Alloc returns zeroed, 8-byte aligned Go memory of at least size bytes for
// building blocks in the driver's layout. The memory lives as long as the
// returned pointer is referenced.
func Alloc(size int) unsafe.Pointer {
	buf := make([]uint64, (size+7)/8)
	return unsafe.Pointer(&buf[0])
}
