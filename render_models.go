package vrmodels

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// RenderModels gives access to the render model catalog of a VR runtime and
// loads models from it.
//
// RenderModels holds no mutable state and adds no locking: it is as safe
// for concurrent use as the Interface it wraps. Concurrent loads, even of
// the same name, run independent poll loops.
type RenderModels struct {
	iface Interface
	opts  options
}

// New wraps a driver table. It panics if iface is nil.
func New(iface Interface, opts ...Option) *RenderModels {
	if iface == nil {
		panic("vrmodels: nil Interface")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &RenderModels{iface: iface, opts: o}
}

// Count returns the number of render models in the catalog.
func (r *RenderModels) Count() uint32 {
	return r.iface.RenderModelCount()
}

// Name returns the name of the render model at index, or "" if the driver
// has no name for it.
//
// The name is fetched in two calls: one asking for the required size and
// one filling a buffer of exactly that size. Name panics with an error
// wrapping ErrCatalogChanged if the two sizes differ, and with one wrapping
// ErrInvalidName if the bytes are not valid UTF-8. Both mean the driver
// broke its contract.
func (r *RenderModels) Name(index uint32) string {
	required := r.iface.RenderModelName(index, nil)
	if required == 0 {
		return ""
	}

	buf := make([]byte, required)
	size := r.iface.RenderModelName(index, buf)
	if size != required {
		panic(fmt.Errorf("%w: index %d: %d bytes, then %d", ErrCatalogChanged, index, required, size))
	}

	// The reported size counts the NUL terminator.
	name := buf[:size-1]
	if !utf8.Valid(name) {
		panic(fmt.Errorf("%w: index %d", ErrInvalidName, index))
	}
	return string(name)
}

// Names iterates over the catalog, yielding each index with its name.
// Count is read once, when iteration starts.
func (r *RenderModels) Names() iter.Seq2[uint32, string] {
	return func(yield func(uint32, string) bool) {
		n := r.Count()
		for i := range n {
			if !yield(i, r.Name(i)) {
				return
			}
		}
	}
}

// LoadAsync makes a single non-blocking load call for the named model.
//
// The first call for a name usually starts a background load in the driver
// and returns ErrorLoading; calling again later polls it. On success the
// returned RenderModel owns the driver's block and must be closed. On any
// error no RenderModel is created and nothing needs releasing.
//
// LoadAsync is meant for render loops that cannot block. Use Load otherwise.
func (r *RenderModels) LoadAsync(name string) (*RenderModel, error) {
	block, code := r.iface.LoadRenderModelAsync(name)
	if Classify(code) != StatusSuccess {
		return nil, code
	}
	if block == nil {
		r.opts.log().Warn("vrmodels: driver returned no render model", "name", name)
		return nil, fmt.Errorf("%w: render model %q", ErrNilResource, name)
	}
	return newRenderModel(r, name, block), nil
}

// Load loads the named model, blocking until the driver finishes or fails.
// ErrorLoading is never returned.
func (r *RenderModels) Load(name string) (*RenderModel, error) {
	return poll(r.opts.pollInterval, r.opts.log(), name, func() (*RenderModel, error) {
		return r.LoadAsync(name)
	})
}

// loadTextureAsync makes a single non-blocking texture load call.
func (r *RenderModels) loadTextureAsync(id TextureID) (*Texture, error) {
	block, code := r.iface.LoadTextureAsync(id)
	if Classify(code) != StatusSuccess {
		return nil, code
	}
	if block == nil {
		r.opts.log().Warn("vrmodels: driver returned no texture", "id", id)
		return nil, fmt.Errorf("%w: texture %d", ErrNilResource, id)
	}
	return newTexture(r, id, block), nil
}
