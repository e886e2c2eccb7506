// Command vrmodels lists the render models of the installed OpenVR runtime
// and exports their geometry summary and diffuse texture.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gogpu/vrmodels"
	"github.com/gogpu/vrmodels/internal/parallel"
	"github.com/gogpu/vrmodels/openvr"
)

func main() {
	var (
		lib     = flag.String("lib", "", "path to the openvr_api shared library")
		model   = flag.String("model", "", "render model to load; lists the catalog when empty")
		output  = flag.String("output", "", "write the model's texture to this PNG file")
		thumb   = flag.Int("thumb", 0, "also write a thumbnail of this size next to -output")
		all     = flag.Bool("all", false, "load every model in the catalog and print a summary")
		workers = flag.Int("workers", 0, "concurrent loads for -all (default GOMAXPROCS)")
		verbose = flag.Bool("v", false, "log driver calls")
	)
	flag.Parse()

	if *verbose {
		vrmodels.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	rt, err := openvr.Init(openvr.WithLibrary(*lib))
	if err != nil {
		log.Fatalf("Failed to start OpenVR: %v", err)
	}
	defer rt.Close()

	models := vrmodels.New(rt.RenderModels())
	if *all {
		if err := summarize(os.Stdout, models, *workers); err != nil {
			rt.Close()
			log.Fatal(err)
		}
		return
	}
	if *model == "" {
		listCatalog(os.Stdout, models)
		return
	}

	if err := export(os.Stdout, models, *model, *output, *thumb); err != nil {
		rt.Close()
		log.Fatal(err)
	}
}

func listCatalog(w io.Writer, models *vrmodels.RenderModels) {
	n := 0
	for i, name := range models.Names() {
		fmt.Fprintf(w, "%4d  %s\n", i, name)
		n++
	}
	fmt.Fprintf(w, "%d render models\n", n)
}

// summary is the outcome of loading one catalog entry.
type summary struct {
	name      string
	vertices  int
	triangles int
	err       error
}

// summarize loads every model of the catalog on a worker pool and prints
// one line per model. It fails when any load failed.
func summarize(w io.Writer, models *vrmodels.RenderModels, workers int) error {
	var names []string
	for _, name := range models.Names() {
		if name != "" {
			names = append(names, name)
		}
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	results := parallel.Map(pool, len(names), func(i int) summary {
		s := summary{name: names[i]}
		m, err := models.Load(names[i])
		if err != nil {
			s.err = err
			return s
		}
		defer m.Close()
		s.vertices, s.triangles = m.VertexCount(), m.TriangleCount()
		return s
	})

	failed := 0
	for _, s := range results {
		if s.err != nil {
			failed++
			fmt.Fprintf(w, "%-40s  error: %v\n", s.name, s.err)
			continue
		}
		fmt.Fprintf(w, "%-40s  %6d vertices  %6d triangles\n", s.name, s.vertices, s.triangles)
	}
	fmt.Fprintf(w, "%d loaded, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d render models failed to load", failed, len(results))
	}
	return nil
}

func export(w io.Writer, models *vrmodels.RenderModels, name, output string, thumb int) error {
	m, err := models.Load(name)
	if err != nil {
		return fmt.Errorf("load %q: %w", name, err)
	}
	defer m.Close()

	describe(w, m)

	if output == "" {
		return nil
	}
	tex, err := m.LoadTexture()
	if err != nil {
		return fmt.Errorf("load texture %d of %q: %w", m.TextureID(), name, err)
	}
	defer tex.Close()

	img := tex.Image()
	if err := savePNG(output, img); err != nil {
		return err
	}
	width, height := tex.Dimension()
	log.Printf("Texture saved to %s (%dx%d)\n", output, width, height)

	if thumb > 0 {
		path := thumbnailPath(output, thumb)
		if err := savePNG(path, thumbnail(img, thumb)); err != nil {
			return err
		}
		log.Printf("Thumbnail saved to %s\n", path)
	}
	return nil
}

func describe(w io.Writer, m *vrmodels.RenderModel) {
	fmt.Fprintf(w, "model     %s\n", m.Name())
	fmt.Fprintf(w, "vertices  %d\n", m.VertexCount())
	fmt.Fprintf(w, "triangles %d\n", m.TriangleCount())
	fmt.Fprintf(w, "texture   %d\n", m.TextureID())

	layout := m.VertexLayout()
	fmt.Fprintf(w, "layout    stride %d, index %v\n", layout.ArrayStride, m.IndexFormat())
	for _, a := range layout.Attributes {
		fmt.Fprintf(w, "          @location(%d) offset %d %v\n", a.ShaderLocation, a.Offset, a.Format)
	}
}

// thumbnail scales src to fit in a size×size square, keeping its aspect
// ratio.
func thumbnail(src *image.NRGBA, size int) *image.NRGBA {
	b := src.Bounds()
	w, h := size, size
	switch {
	case b.Dx() == 0 || b.Dy() == 0:
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	case b.Dx() > b.Dy():
		h = max(1, size*b.Dy()/b.Dx())
	case b.Dy() > b.Dx():
		w = max(1, size*b.Dx()/b.Dy())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func thumbnailPath(output string, size int) string {
	base := strings.TrimSuffix(output, ".png")
	return fmt.Sprintf("%s_%d.png", base, size)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
