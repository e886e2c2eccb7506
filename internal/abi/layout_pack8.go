//go:build windows

package abi

// #pragma pack(8) layout used by openvr.h on Windows.
const (
	// ModelSize is sizeof(RenderModel_t).
	ModelSize = 32

	modelVerticesOffset      = 0
	modelVertexCountOffset   = 8
	modelIndicesOffset       = 16
	modelTriangleCountOffset = 24
	modelTextureIDOffset     = 28

	// TextureMapSize is sizeof(RenderModel_TextureMap_t).
	TextureMapSize = 24

	textureWidthOffset     = 0
	textureHeightOffset    = 2
	textureDataOffset      = 8
	textureFormatOffset    = 16
	textureMipLevelsOffset = 20
)
