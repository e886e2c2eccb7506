//go:build !windows

package abi

// #pragma pack(4) layout used by openvr.h on Linux and macOS.
const (
	// ModelSize is sizeof(RenderModel_t).
	ModelSize = 28

	modelVerticesOffset      = 0
	modelVertexCountOffset   = 8
	modelIndicesOffset       = 12
	modelTriangleCountOffset = 20
	modelTextureIDOffset     = 24

	// TextureMapSize is sizeof(RenderModel_TextureMap_t).
	TextureMapSize = 20

	textureWidthOffset     = 0
	textureHeightOffset    = 2
	textureDataOffset      = 4
	textureFormatOffset    = 12
	textureMipLevelsOffset = 16
)
