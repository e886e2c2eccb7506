package vrmodels_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/gogpu/vrmodels"
	"github.com/gogpu/vrmodels/vrtest"
)

func vertexGen() *rapid.Generator[vrmodels.Vertex] {
	f := rapid.Float32Range(-10, 10)
	return rapid.Custom(func(t *rapid.T) vrmodels.Vertex {
		return vrmodels.Vertex{
			Position: [3]float32{f.Draw(t, "px"), f.Draw(t, "py"), f.Draw(t, "pz")},
			Normal:   [3]float32{f.Draw(t, "nx"), f.Draw(t, "ny"), f.Draw(t, "nz")},
			TexCoord: [2]float32{f.Draw(t, "u"), f.Draw(t, "v")},
		}
	})
}

func fastModels(drv *vrtest.Driver) *vrmodels.RenderModels {
	return vrmodels.New(drv, vrmodels.WithPollInterval(time.Microsecond))
}

func TestPropertyViewsMatchDriverOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		verts := rapid.SliceOfN(vertexGen(), 0, 64).Draw(t, "vertices")
		triangles := rapid.IntRange(0, 32).Draw(t, "triangles")
		idx := rapid.SliceOfN(rapid.Uint16(), triangles*3, triangles*3).Draw(t, "indices")

		drv := vrtest.NewDriver()
		drv.AddModel(vrtest.Model{Name: "m", Vertices: verts, Indices: idx})

		m, err := fastModels(drv).Load("m")
		if err != nil {
			t.Fatalf("Load() = %v", err)
		}

		for range 2 {
			got := slices.Collect(m.Vertices())
			if len(got) != len(verts) || (len(verts) > 0 && !slices.Equal(got, verts)) {
				t.Fatalf("Vertices() = %d elements, want %d in driver order", len(got), len(verts))
			}
			gotIdx := slices.Collect(m.Indices())
			if len(gotIdx) != triangles*3 || (len(idx) > 0 && !slices.Equal(gotIdx, idx)) {
				t.Fatalf("Indices() = %d elements, want %d", len(gotIdx), triangles*3)
			}
		}

		m.Close()
		if drv.Outstanding() != 0 || drv.FreedModels() != 1 {
			t.Fatalf("after Close: outstanding %d, freed %d", drv.Outstanding(), drv.FreedModels())
		}
	})
}

func TestPropertyLoadOutcome(t *testing.T) {
	terminal := []vrmodels.ErrorCode{
		vrmodels.ErrorNone,
		vrmodels.ErrorNotSupported,
		vrmodels.ErrorInvalidArg,
		vrmodels.ErrorInvalidModel,
		vrmodels.ErrorNoShapes,
		vrmodels.ErrorBufferTooSmall,
	}

	rapid.Check(t, func(t *rapid.T) {
		polls := rapid.IntRange(0, 20).Draw(t, "loading polls")
		code := rapid.SampledFrom(terminal).Draw(t, "final code")
		closes := rapid.IntRange(1, 3).Draw(t, "closes")

		drv := vrtest.NewDriver()
		drv.AddModel(vrtest.Model{Name: "m", LoadingPolls: polls, Err: code})

		m, err := fastModels(drv).Load("m")
		if got := drv.ModelLoads("m"); got != polls+1 {
			t.Fatalf("driver saw %d loads, want %d", got, polls+1)
		}
		if vrmodels.IsLoading(err) {
			t.Fatal("Load surfaced ErrorLoading")
		}

		switch {
		case code == vrmodels.ErrorNone:
			if err != nil || m == nil {
				t.Fatalf("Load() = %v, %v; want a model", m, err)
			}
			for range closes {
				m.Close()
			}
			if drv.FreedModels() != 1 {
				t.Fatalf("%d closes released %d times, want 1", closes, drv.FreedModels())
			}
		default:
			if m != nil || !errors.Is(err, code) {
				t.Fatalf("Load() = %v, %v; want nil, %v", m, err, code)
			}
			if drv.FreedModels() != 0 {
				t.Fatal("failed load released memory")
			}
		}

		if drv.Outstanding() != 0 || drv.InvalidFrees() != 0 {
			t.Fatalf("outstanding %d, invalid frees %d", drv.Outstanding(), drv.InvalidFrees())
		}
	})
}

func TestPropertyNameProtocol(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(rapid.String(), 1, 8).Draw(t, "names")
		index := rapid.IntRange(0, len(names)-1).Draw(t, "index")

		drv := vrtest.NewDriver()
		drv.SetCatalog(names...)

		got := fastModels(drv).Name(uint32(index))
		if got != names[index] {
			t.Fatalf("Name(%d) = %q, want %q", index, got, names[index])
		}

		want := 2
		if names[index] == "" {
			want = 1
		}
		if calls := drv.NameCalls(); calls != want {
			t.Fatalf("Name(%d) made %d driver calls, want %d", index, calls, want)
		}
	})
}

func TestPropertyTextureBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(0, 16).Draw(t, "width")
		h := rapid.IntRange(0, 16).Draw(t, "height")
		pixels := rapid.SliceOfN(rapid.Byte(), w*h*4, w*h*4).Draw(t, "pixels")

		drv := vrtest.NewDriver()
		drv.AddModel(vrtest.Model{Name: "m", TextureID: 1})
		drv.AddTexture(vrtest.Texture{ID: 1, Width: w, Height: h, Pixels: pixels})

		m, err := fastModels(drv).Load("m")
		if err != nil {
			t.Fatal(err)
		}
		defer m.Close()

		tex, err := m.LoadTexture()
		if err != nil {
			t.Fatal(err)
		}
		b := tex.Bytes()
		tex.Close()

		if len(b) != w*h*4 {
			t.Fatalf("Bytes() = %d bytes, want %d", len(b), w*h*4)
		}
		if len(b) > 0 && !slices.Equal(b, pixels) {
			t.Fatal("Bytes() differs from driver pixels")
		}
		if drv.FreedTextures() != 1 {
			t.Fatalf("FreeTexture called %d times, want 1", drv.FreedTextures())
		}
	})
}
