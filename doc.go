// Package doodle implements the drawing engine of a daily-doodle journal.
//
// # Overview
//
// A doodle is an ordered list of freehand strokes. Each stroke is either a
// drawn line (two or more points connected by straight segments) or a single
// tap rendered as a filled dot. Strokes are serialized as JSON blobs by the
// capture side and decoded back into renderable vector paths here.
//
// # Quick Start
//
//	import "github.com/joodle/doodle"
//
//	// Decode a serialized drawing into renderable paths.
//	paths := doodle.DecodePaths(blob)
//
//	// Or go through the LRU cache when the same blob is rendered repeatedly:
//	pc := doodle.NewPathCache(doodle.DefaultPathCacheCapacity, nil)
//	paths = pc.Get(blob)
//
// # Architecture
//
// The module is organized into:
//   - Root package: geometry (Point, Path, Matrix, Rect), the stroke data
//     model, the JSON codec, and the decode cache.
//   - replay: stroke-by-stroke animation timing (proportional durations with
//     a floor and a global ceiling, eased progress queries).
//   - render: CPU rasterization of decoded paths to images, including
//     share-card output.
//   - journal: bbolt-backed persistence of per-day entries (note + drawing).
//
// # Coordinate System
//
// Standard computer graphics coordinates: origin at top-left, X increases
// right, Y increases down. All geometry is float64.
package doodle

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
