package easel

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by session and drawing operations.
// Use errors.Is to test for them.
var (
	// ErrNoActiveDrawing is returned when an operation requires an active
	// drawing but the session's active index is zero.
	ErrNoActiveDrawing = errors.New("easel: no active drawing")

	// ErrDrawingFinished is returned when an operation is attempted on a
	// drawing that has already been finished.
	ErrDrawingFinished = errors.New("easel: drawing already finished")

	// ErrNotRecording is returned by Snapshot when the active drawing is
	// not backed by a recording surface.
	ErrNotRecording = errors.New("easel: active drawing is not a recording")
)

// UnknownKindError is returned when a drawing kind has not been registered.
// Backend packages register their kinds in init, so this usually means a
// missing blank import of the backend package.
type UnknownKindError struct {
	// Kind is the requested drawing kind.
	Kind string
}

// Error implements the error interface.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("easel: unknown drawing kind %q (forgotten import?)", e.Kind)
}

// CropRangeError is returned by Snapshot when the crop box or scale cannot
// be projected onto the source recording.
type CropRangeError struct {
	// Box is the requested crop box in the recording's base coordinates.
	Box Rect

	// Scale is the requested scale factor.
	Scale float64

	// Extents is the recording's ink extents at the time of the snapshot.
	// It is the zero Rect when the recording contains no ink.
	Extents Rect
}

// Error implements the error interface.
func (e *CropRangeError) Error() string {
	if !isFinitePositive(e.Scale) {
		return fmt.Sprintf("easel: invalid snapshot scale %v", e.Scale)
	}
	if e.Box == (Rect{}) && e.Extents.IsEmpty() {
		return "easel: snapshot of a boundless recording with no ink"
	}
	if !e.Box.IsFinite() || e.Box.IsEmpty() {
		return fmt.Sprintf("easel: invalid crop box %v", e.Box)
	}
	if e.Extents.IsEmpty() {
		return fmt.Sprintf("easel: crop box %v out of range: recording has no ink", e.Box)
	}
	return fmt.Sprintf("easel: crop box %v outside recorded extents %v", e.Box, e.Extents)
}

// isFinitePositive reports whether v is a finite value greater than zero.
func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
