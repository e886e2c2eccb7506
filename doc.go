// Package vrmodels provides safe access to the render models of an OpenVR
// runtime: the meshes and textures of controllers, headsets and tracked
// devices.
//
// # Overview
//
// The runtime loads render models asynchronously and hands back memory it
// owns. This package turns that into ordinary Go values:
//
//   - Load and LoadTexture block until the driver is done, polling at a
//     configurable interval. LoadAsync and LoadTextureAsync make a single
//     non-blocking call for use inside render loops.
//   - RenderModel and Texture own the driver's memory and release it exactly
//     once, on the first Close.
//   - Vertices, Indices and Pixels read the driver's buffers in place. Views
//     are valid until the owning handle is closed. Bytes, Image and the
//     Copy methods return memory the caller owns.
//
// # Quick Start
//
//	rt, err := openvr.Init()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer rt.Close()
//
//	models := vrmodels.New(rt.RenderModels())
//	m, err := models.Load("generic_hmd")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer m.Close()
//
//	for v := range m.Vertices() {
//		_ = v.Position
//	}
//
// # Errors
//
// Driver failures are returned as ErrorCode values, which implement error:
//
//	if errors.Is(err, vrmodels.ErrorInvalidModel) { ... }
//
// A driver that changes a catalog entry between the two calls of Name, or
// reports a name that is not UTF-8, breaks its contract; Name panics in
// that case.
//
// # GPU Upload
//
// VertexLayout, IndexFormat and Texture.Format describe the data with
// gputypes values, so buffers can be created directly with a WebGPU device.
//
// # Logging
//
// The package is silent by default. SetLogger installs an slog.Logger for
// load and release events; WithLogger overrides it per RenderModels.
//
// # Testing
//
// Package vrtest provides an in-memory driver with scripted loading delays
// and release accounting.
package vrmodels
