// Package openvr loads the OpenVR runtime and exposes its render models
// function table as a vrmodels.Interface.
//
// The binding is pure Go: the shared library (libopenvr_api.so,
// libopenvr_api.dylib or openvr_api.dll) is opened at run time through
// goffi, so no C toolchain is needed to build it.
//
// # Basic Usage
//
//	rt, err := openvr.Init()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer rt.Close()
//
//	models := vrmodels.New(rt.RenderModels())
//	for i, name := range models.Names() {
//		fmt.Println(i, name)
//	}
//
// # Build Requirements
//
// goffi does not build with cgo enabled on Linux, macOS and FreeBSD. In that
// configuration, and on architectures other than amd64 and arm64, the
// package compiles to a stub whose Init returns ErrUnsupported. Build with
// CGO_ENABLED=0 to get the real binding.
package openvr
