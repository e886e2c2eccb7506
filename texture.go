package vrmodels

import (
	"image"
	"image/color"
	"iter"
	"strconv"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vrmodels/internal/abi"
)

// TextureFormat is the pixel format reported in a texture block
// (EVRRenderModelTextureFormat).
type TextureFormat int32

// Texture formats. LoadTexture and LoadTextureAsync always produce
// TextureFormatRGBA8SRGB; the compressed formats are only used by the
// runtime's direct-to-GPU loaders.
const (
	TextureFormatRGBA8SRGB TextureFormat = iota
	TextureFormatBC2
	TextureFormatBC4
	TextureFormatBC7
	TextureFormatBC7SRGB
	TextureFormatRGBA16Float
)

// String returns the format name.
func (f TextureFormat) String() string {
	switch f {
	case TextureFormatRGBA8SRGB:
		return "RGBA8_SRGB"
	case TextureFormatBC2:
		return "BC2"
	case TextureFormatBC4:
		return "BC4"
	case TextureFormatBC7:
		return "BC7"
	case TextureFormatBC7SRGB:
		return "BC7_SRGB"
	case TextureFormatRGBA16Float:
		return "RGBA16_FLOAT"
	default:
		return "TextureFormat(" + strconv.Itoa(int(f)) + ")"
	}
}

// GPUFormat returns the matching GPU texture format, or
// gputypes.TextureFormatUndefined for unknown values.
func (f TextureFormat) GPUFormat() gputypes.TextureFormat {
	switch f {
	case TextureFormatRGBA8SRGB:
		return gputypes.TextureFormatRGBA8UnormSrgb
	case TextureFormatBC2:
		return gputypes.TextureFormatBC2RGBAUnorm
	case TextureFormatBC4:
		return gputypes.TextureFormatBC4RUnorm
	case TextureFormatBC7:
		return gputypes.TextureFormatBC7RGBAUnorm
	case TextureFormatBC7SRGB:
		return gputypes.TextureFormatBC7RGBAUnormSrgb
	case TextureFormatRGBA16Float:
		return gputypes.TextureFormatRGBA16Float
	default:
		return gputypes.TextureFormatUndefined
	}
}

// textureBlock is the opaque RenderModel_TextureMap_t owned by the driver.
type textureBlock struct{}

// Texture is a loaded render model texture: width × height RGBA pixels,
// 8 bits per channel, row-major. It owns a block of driver memory that
// Close hands back.
//
// Pixels reads driver memory and must not be used after Close. Bytes and
// Image copy the pixels into memory owned by the caller.
//
// A Texture must be used by one goroutine at a time and must not be copied.
type Texture struct {
	_ noCopy

	owner *RenderModels
	id    TextureID
	block atomic.Pointer[textureBlock]
	hdr   abi.TextureMap
}

func newTexture(owner *RenderModels, id TextureID, block unsafe.Pointer) *Texture {
	t := &Texture{
		owner: owner,
		id:    id,
		hdr:   abi.ReadTextureMap(block),
	}
	t.block.Store((*textureBlock)(block))
	owner.opts.log().Debug("vrmodels: texture loaded",
		"id", id,
		"width", t.hdr.Width,
		"height", t.hdr.Height,
		"format", TextureFormat(t.hdr.Format))
	return t
}

// ID returns the texture id the texture was loaded with.
func (t *Texture) ID() TextureID {
	return t.id
}

// Closed reports whether Close has been called.
func (t *Texture) Closed() bool {
	return t.block.Load() == nil
}

// Close hands the texture's memory back to the driver. Only the first call
// releases; later calls do nothing.
func (t *Texture) Close() {
	block := t.block.Swap(nil)
	if block == nil {
		return
	}
	t.owner.iface.FreeTexture(unsafe.Pointer(block))
	t.owner.opts.log().Debug("vrmodels: texture released", "id", t.id)
}

// Dimension returns the width and height in pixels, or (0, 0) after Close.
func (t *Texture) Dimension() (width, height int) {
	if t.Closed() {
		return 0, 0
	}
	return int(t.hdr.Width), int(t.hdr.Height)
}

// Size returns the dimensions as a single-layer GPU extent.
func (t *Texture) Size() gputypes.Extent3D {
	w, h := t.Dimension()
	return gputypes.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1}
}

// Format returns the pixel format reported by the driver.
func (t *Texture) Format() TextureFormat {
	return TextureFormat(t.hdr.Format)
}

// MipLevels returns the number of mip levels reported by the driver.
func (t *Texture) MipLevels() int {
	return int(t.hdr.MipLevels)
}

func (t *Texture) pixels() []byte {
	w, h := t.Dimension()
	if t.hdr.Data == nil || w == 0 || h == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(t.hdr.Data), w*h*4)
}

// Pixels returns an iterator over the pixels in row-major order, reading
// driver memory without copying. It may be ranged over any number of times
// until Close; after Close it yields nothing, including when Close is
// called from inside the loop body.
func (t *Texture) Pixels() iter.Seq[color.NRGBA] {
	return func(yield func(color.NRGBA) bool) {
		px := t.pixels()
		for i := 0; i+3 < len(px); i += 4 {
			if t.Closed() || !yield(color.NRGBA{R: px[i], G: px[i+1], B: px[i+2], A: px[i+3]}) {
				return
			}
		}
	}
}

// Bytes returns a copy of the width × height × 4 pixel bytes. The copy is
// independent of the texture and stays valid after Close.
func (t *Texture) Bytes() []byte {
	return append([]byte(nil), t.pixels()...)
}

// Image returns a copy of the pixels as an image. The driver stores
// non-premultiplied alpha, so the result is an NRGBA image.
func (t *Texture) Image() *image.NRGBA {
	w, h := t.Dimension()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, t.pixels())
	return img
}
