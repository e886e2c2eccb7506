// Package vrtest provides an in-memory render models driver for tests.
//
// Driver implements vrmodels.Interface without a VR runtime. Models and
// textures are registered up front together with the number of times a load
// should report ErrorLoading before it completes, which makes the polling
// paths deterministic. Every block handed out is tracked, so tests can
// assert that each one was released exactly once:
//
//	drv := vrtest.NewDriver()
//	drv.AddModel(vrtest.Model{Name: "controller", Vertices: verts, Indices: idx, LoadingPolls: 3})
//
//	models := vrmodels.New(drv, vrmodels.WithPollInterval(time.Millisecond))
//	m, err := models.Load("controller")
//	...
//	m.Close()
//	if n := drv.Outstanding(); n != 0 {
//	    t.Errorf("%d blocks leaked", n)
//	}
package vrtest

import (
	"sync"
	"unsafe"

	"github.com/gogpu/vrmodels"
	"github.com/gogpu/vrmodels/internal/abi"
)

// Model describes a render model served by Driver.
type Model struct {
	Name      string
	Vertices  []vrmodels.Vertex
	Indices   []uint16 // three per triangle
	TextureID vrmodels.TextureID

	// LoadingPolls is the number of load calls answered with ErrorLoading
	// before the load completes.
	LoadingPolls int

	// Err, if set, is returned once loading completes instead of a model.
	Err vrmodels.ErrorCode
}

// Texture describes a texture served by Driver.
type Texture struct {
	ID     vrmodels.TextureID
	Width  int
	Height int
	Pixels []byte // RGBA, padded or truncated to Width*Height*4
	Format vrmodels.TextureFormat

	LoadingPolls int
	Err          vrmodels.ErrorCode
}

// Driver is a fake vrmodels.Interface. It is safe for concurrent use.
type Driver struct {
	mu sync.Mutex

	catalog  [][]byte
	models   map[string]*Model
	textures map[vrmodels.TextureID]*Texture

	modelLoads   map[string]int
	textureLoads map[vrmodels.TextureID]int

	// live maps every outstanding block to the memory it points into, which
	// keeps that memory reachable until the block is freed.
	live map[unsafe.Pointer]any

	freedModels   int
	freedTextures int
	invalidFrees  int
	nameCalls     int

	onName func(index uint32, buf []byte)
}

// NewDriver returns an empty driver.
func NewDriver() *Driver {
	return &Driver{
		models:       make(map[string]*Model),
		textures:     make(map[vrmodels.TextureID]*Texture),
		modelLoads:   make(map[string]int),
		textureLoads: make(map[vrmodels.TextureID]int),
		live:         make(map[unsafe.Pointer]any),
	}
}

// SetCatalog replaces the catalog with names. An empty name makes the
// driver report size 0 for its index.
func (d *Driver) SetCatalog(names ...string) {
	raw := make([][]byte, len(names))
	for i, n := range names {
		raw[i] = []byte(n)
	}
	d.SetRawCatalog(raw...)
}

// SetRawCatalog replaces the catalog with names given as raw bytes, which
// need not be valid UTF-8.
func (d *Driver) SetRawCatalog(names ...[]byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.catalog = names
}

// OnNameQuery registers fn to run after every RenderModelName call, outside
// the driver lock. Tests use it to change the catalog between the two
// calls of the name protocol.
func (d *Driver) OnNameQuery(fn func(index uint32, buf []byte)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onName = fn
}

// AddModel registers m under m.Name, replacing any model of that name, and
// resets its load counter.
func (d *Driver) AddModel(m Model) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.models[m.Name] = &m
	delete(d.modelLoads, m.Name)
}

// AddTexture registers t under t.ID and resets its load counter.
func (d *Driver) AddTexture(t Texture) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.textures[t.ID] = &t
	delete(d.textureLoads, t.ID)
}

// RenderModelCount implements vrmodels.Interface.
func (d *Driver) RenderModelCount() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return uint32(len(d.catalog))
}

// RenderModelName implements vrmodels.Interface.
func (d *Driver) RenderModelName(index uint32, buf []byte) uint32 {
	n := d.renderModelName(index, buf)

	d.mu.Lock()
	hook := d.onName
	d.mu.Unlock()
	if hook != nil {
		hook(index, buf)
	}
	return n
}

func (d *Driver) renderModelName(index uint32, buf []byte) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nameCalls++
	if int(index) >= len(d.catalog) || len(d.catalog[index]) == 0 {
		return 0
	}
	name := d.catalog[index]
	required := uint32(len(name) + 1)
	if len(buf) == 0 {
		return required
	}
	if uint32(len(buf)) < required {
		return 0
	}
	copy(buf, name)
	buf[len(name)] = 0
	return required
}

type modelMemory struct {
	vertices []vrmodels.Vertex
	indices  []uint16
}

// LoadRenderModelAsync implements vrmodels.Interface. Unknown names fail
// with ErrorInvalidModel.
func (d *Driver) LoadRenderModelAsync(name string) (unsafe.Pointer, vrmodels.ErrorCode) {
	d.mu.Lock()
	defer d.mu.Unlock()

	m, ok := d.models[name]
	if !ok {
		return nil, vrmodels.ErrorInvalidModel
	}
	d.modelLoads[name]++
	if d.modelLoads[name] <= m.LoadingPolls {
		return nil, vrmodels.ErrorLoading
	}
	if m.Err != vrmodels.ErrorNone {
		return nil, m.Err
	}

	mem := &modelMemory{
		vertices: append([]vrmodels.Vertex(nil), m.Vertices...),
		indices:  append([]uint16(nil), m.Indices...),
	}
	hdr := abi.Model{
		VertexCount:   uint32(len(mem.vertices)),
		TriangleCount: uint32(len(mem.indices) / 3),
		TextureID:     int32(m.TextureID),
	}
	if len(mem.vertices) > 0 {
		hdr.Vertices = unsafe.Pointer(&mem.vertices[0])
	}
	if len(mem.indices) > 0 {
		hdr.Indices = unsafe.Pointer(&mem.indices[0])
	}

	block := abi.Alloc(abi.ModelSize)
	abi.WriteModel(block, hdr)
	d.live[block] = mem
	return block, vrmodels.ErrorNone
}

// FreeRenderModel implements vrmodels.Interface. Freeing a block that is not
// outstanding is counted by InvalidFrees.
func (d *Driver) FreeRenderModel(model unsafe.Pointer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.live[model].(*modelMemory); !ok {
		d.invalidFrees++
		return
	}
	delete(d.live, model)
	d.freedModels++
}

// LoadTextureAsync implements vrmodels.Interface. Unknown ids fail with
// ErrorInvalidTexture.
func (d *Driver) LoadTextureAsync(id vrmodels.TextureID) (unsafe.Pointer, vrmodels.ErrorCode) {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.textures[id]
	if !ok {
		return nil, vrmodels.ErrorInvalidTexture
	}
	d.textureLoads[id]++
	if d.textureLoads[id] <= t.LoadingPolls {
		return nil, vrmodels.ErrorLoading
	}
	if t.Err != vrmodels.ErrorNone {
		return nil, t.Err
	}

	pixels := make([]byte, t.Width*t.Height*4)
	copy(pixels, t.Pixels)
	hdr := abi.TextureMap{
		Width:     uint16(t.Width),
		Height:    uint16(t.Height),
		Format:    int32(t.Format),
		MipLevels: 1,
	}
	if len(pixels) > 0 {
		hdr.Data = unsafe.Pointer(&pixels[0])
	}

	block := abi.Alloc(abi.TextureMapSize)
	abi.WriteTextureMap(block, hdr)
	d.live[block] = pixels
	return block, vrmodels.ErrorNone
}

// FreeTexture implements vrmodels.Interface.
func (d *Driver) FreeTexture(texture unsafe.Pointer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.live[texture].([]byte); !ok {
		d.invalidFrees++
		return
	}
	delete(d.live, texture)
	d.freedTextures++
}

// Outstanding returns the number of blocks handed out and not yet freed.
func (d *Driver) Outstanding() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.live)
}

// FreedModels returns the number of successful FreeRenderModel calls.
func (d *Driver) FreedModels() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.freedModels
}

// FreedTextures returns the number of successful FreeTexture calls.
func (d *Driver) FreedTextures() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.freedTextures
}

// InvalidFrees returns the number of free calls for blocks that were not
// outstanding: double frees, frees of foreign pointers, or model blocks
// passed to FreeTexture and the other way round.
func (d *Driver) InvalidFrees() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.invalidFrees
}

// NameCalls returns the number of RenderModelName calls.
func (d *Driver) NameCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nameCalls
}

// ModelLoads returns the number of load calls made for name.
func (d *Driver) ModelLoads(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modelLoads[name]
}

// TextureLoads returns the number of load calls made for id.
func (d *Driver) TextureLoads(id vrmodels.TextureID) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.textureLoads[id]
}

var _ vrmodels.Interface = (*Driver)(nil)
