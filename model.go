package vrmodels

import (
	"fmt"
	"iter"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vrmodels/internal/abi"
)

// Vertex is one vertex of a render model, laid out exactly like
// RenderModel_Vertex_t.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Vertex must match the driver's 32-byte vertex in both directions.
var (
	_ [abi.VertexSize - unsafe.Sizeof(Vertex{})]struct{}
	_ [unsafe.Sizeof(Vertex{}) - abi.VertexSize]struct{}
)

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// modelBlock is the opaque RenderModel_t owned by the driver.
type modelBlock struct{}

// RenderModel is a loaded render model: a triangle mesh plus the id of its
// diffuse texture. It owns a block of driver memory that Close hands back.
//
// Lifecycle:
//  1. Obtain from RenderModels.Load or RenderModels.LoadAsync
//  2. Read geometry with Vertices and Indices, load the texture with
//     LoadTexture
//  3. Call Close exactly when no view obtained from the model is still in
//     use
//
// Views returned by Vertices, Indices and the iterators they produce read
// driver memory directly and must not be used after Close. Copy the data
// with CopyVertices or CopyIndices to keep it longer.
//
// A RenderModel must be used by one goroutine at a time and must not be
// copied; pass the pointer.
type RenderModel struct {
	_ noCopy

	owner *RenderModels
	name  string
	block atomic.Pointer[modelBlock]
	hdr   abi.Model
}

func newRenderModel(owner *RenderModels, name string, block unsafe.Pointer) *RenderModel {
	m := &RenderModel{
		owner: owner,
		name:  name,
		hdr:   abi.ReadModel(block),
	}
	m.block.Store((*modelBlock)(block))
	owner.opts.log().Debug("vrmodels: render model loaded",
		"name", name,
		"vertices", m.hdr.VertexCount,
		"triangles", m.hdr.TriangleCount,
		"texture", m.hdr.TextureID)
	return m
}

// Name returns the name the model was loaded with.
func (m *RenderModel) Name() string {
	return m.name
}

// Closed reports whether Close has been called.
func (m *RenderModel) Closed() bool {
	return m.block.Load() == nil
}

// Close hands the model's memory back to the driver. Only the first call
// releases; later calls do nothing.
func (m *RenderModel) Close() {
	block := m.block.Swap(nil)
	if block == nil {
		return
	}
	m.owner.iface.FreeRenderModel(unsafe.Pointer(block))
	m.owner.opts.log().Debug("vrmodels: render model released", "name", m.name)
}

// VertexCount returns the number of vertices, or 0 after Close.
func (m *RenderModel) VertexCount() int {
	if m.Closed() {
		return 0
	}
	return int(m.hdr.VertexCount)
}

// TriangleCount returns the number of triangles, or 0 after Close.
func (m *RenderModel) TriangleCount() int {
	if m.Closed() {
		return 0
	}
	return int(m.hdr.TriangleCount)
}

// TextureID returns the id of the model's diffuse texture. Models without
// a texture report a negative id.
func (m *RenderModel) TextureID() TextureID {
	return TextureID(m.hdr.TextureID)
}

func (m *RenderModel) vertices() []Vertex {
	if m.Closed() || m.hdr.Vertices == nil || m.hdr.VertexCount == 0 {
		return nil
	}
	return unsafe.Slice((*Vertex)(m.hdr.Vertices), m.hdr.VertexCount)
}

func (m *RenderModel) indices() []uint16 {
	if m.Closed() || m.hdr.Indices == nil || m.hdr.TriangleCount == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(m.hdr.Indices), int(m.hdr.TriangleCount)*3)
}

// Vertices returns an iterator over the model's vertices in driver order.
// The iterator reads driver memory without copying and may be ranged over
// any number of times until Close; after Close it yields nothing, including
// when Close is called from inside the loop body.
func (m *RenderModel) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, v := range m.vertices() {
			if m.Closed() || !yield(v) {
				return
			}
		}
	}
}

// Indices returns an iterator over the triangle indices, three per
// triangle. The same lifetime rules as for Vertices apply.
func (m *RenderModel) Indices() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for _, i := range m.indices() {
			if m.Closed() || !yield(i) {
				return
			}
		}
	}
}

// CopyVertices returns the vertices in memory owned by the caller.
func (m *RenderModel) CopyVertices() []Vertex {
	return append([]Vertex(nil), m.vertices()...)
}

// CopyIndices returns the triangle indices in memory owned by the caller.
func (m *RenderModel) CopyIndices() []uint16 {
	return append([]uint16(nil), m.indices()...)
}

// VertexLayout describes the vertex data for a GPU vertex buffer: position
// at location 0, normal at 1, texture coordinate at 2.
func (m *RenderModel) VertexLayout() gputypes.VertexBufferLayout {
	return VertexLayout()
}

// IndexFormat returns the format of the index data.
func (m *RenderModel) IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint16
}

// VertexLayout describes Vertex as a GPU vertex buffer layout.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(Vertex{}.Position)), ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(Vertex{}.Normal)), ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x2, Offset: uint64(unsafe.Offsetof(Vertex{}.TexCoord)), ShaderLocation: 2},
		},
	}
}

// LoadTextureAsync makes a single non-blocking load call for the model's
// diffuse texture, with the same contract as RenderModels.LoadAsync. The
// texture is independent of the model once loaded and may outlive it.
func (m *RenderModel) LoadTextureAsync() (*Texture, error) {
	if m.Closed() {
		return nil, fmt.Errorf("%w: %q", ErrClosed, m.name)
	}
	return m.owner.loadTextureAsync(m.TextureID())
}

// LoadTexture loads the model's diffuse texture, blocking until the driver
// finishes or fails. ErrorLoading is never returned.
func (m *RenderModel) LoadTexture() (*Texture, error) {
	return poll(m.owner.opts.pollInterval, m.owner.opts.log(), m.name+" texture", m.LoadTextureAsync)
}
