// Package easel provides a multi-backend 2D vector drawing API for Go.
//
// # Overview
//
// easel is a state-management layer over pluggable rendering backends.
// Callers issue drawing commands (shapes, paths, text, transforms, color)
// against a Drawing that targets one of several output kinds: an in-memory
// raster image, PNG, PDF, SVG, EPS, or an in-memory recording that can be
// replayed later at arbitrary scale and crop.
//
// # Quick Start
//
//	import (
//	    "github.com/easelgfx/easel"
//	    _ "github.com/easelgfx/easel/backend/raster" // register "image" and "png"
//	)
//
//	d, err := easel.NewPNG("out.png", 512, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d.SetRGB(1, 0, 0)
//	d.DrawCircle(256, 256, 100)
//	d.Fill()
//	if err := d.Finish(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Drawings and Sessions
//
// Every Drawing is registered in a Session, an ordered list with one active
// slot. Constructors activate the drawing they create; Finish seals it and
// frees its slot for reuse by the next constructor. The package-level
// functions operate on a lazily created default session. Worker goroutines
// that draw concurrently create their own Session with NewSession and pass
// it to constructors via WithSession; a Session must not be shared between
// goroutines.
//
// # Backends
//
// Output kinds are provided by backend packages that register themselves in
// init, following the database/sql driver pattern. Import the backends you
// need for their side effects:
//
//	_ "github.com/easelgfx/easel/backend/raster" // "image", "png"
//	_ "github.com/easelgfx/easel/backend/pdf"    // "pdf"
//	_ "github.com/easelgfx/easel/backend/svg"    // "svg"
//	_ "github.com/easelgfx/easel/backend/eps"    // "eps"
//
// The "record" kind is built in and always available.
//
// # Recording and Snapshot
//
// A recording drawing captures device-space commands instead of producing
// output. Snapshot replays a crop of the active recording into a new drawing
// of any kind, scaled by an arbitrary factor, and restores the previously
// active drawing when done:
//
//	easel.NewRecording(400, 300)
//	// ... draw ...
//	img, err := easel.SnapshotImage(easel.NewRect(100, 50, 200, 200), 2.0)
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles are
// in radians. Transforms apply to coordinates at the moment a command is
// issued; recorded commands are stored in device space.
package easel

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
