package doodle

import (
	"encoding/json"
	"fmt"
)

// strokeRecord is the serialized form of a single stroke.
//
// The dot flag is optional in the serialized form: blobs written before the
// flag existed simply omit it, and an absent field decodes as false. This is
// a permanent compatibility shim, not a transient workaround.
type strokeRecord struct {
	Points [][2]float64 `json:"points"`
	Dot    bool         `json:"dot,omitempty"`
}

// ParseDrawing parses a serialized drawing blob.
// The blob is a JSON array of stroke records, each carrying an ordered list
// of [x, y] point pairs and an optional dot flag.
func ParseDrawing(data []byte) (Drawing, error) {
	var records []strokeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse drawing: %w", err)
	}
	drawing := make(Drawing, 0, len(records))
	for _, rec := range records {
		points := make([]Point, 0, len(rec.Points))
		for _, pt := range rec.Points {
			points = append(points, Pt(pt[0], pt[1]))
		}
		drawing = append(drawing, Stroke{Points: points, Dot: rec.Dot})
	}
	return drawing, nil
}

// EncodeDrawing serializes a drawing to its blob form.
func EncodeDrawing(d Drawing) ([]byte, error) {
	records := make([]strokeRecord, 0, len(d))
	for _, s := range d {
		points := make([][2]float64, 0, len(s.Points))
		for _, pt := range s.Points {
			points = append(points, [2]float64{pt.X, pt.Y})
		}
		records = append(records, strokeRecord{Points: points, Dot: s.Dot})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode drawing: %w", err)
	}
	return data, nil
}

// DecodePaths decodes a serialized drawing blob into renderable paths.
//
// This is the lenient entry point used on the render path: a malformed blob
// yields an empty list rather than an error, so the caller renders nothing
// for that entry instead of failing.
func DecodePaths(data []byte) []DecodedPath {
	drawing, err := ParseDrawing(data)
	if err != nil {
		Logger().Warn("discarding malformed drawing blob", "bytes", len(data), "err", err)
		return nil
	}
	return drawing.Decode()
}
