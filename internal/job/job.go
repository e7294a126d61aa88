// Package job provides persistence for pipeline results.
package job

import (
	"encoding/json"
	"os"
	"time"

	"dxf-cam/internal/entity"
	"dxf-cam/internal/offset"
	"dxf-cam/pkg/geometry"
)

// Result bundles the artifacts computed from one drawing.
type Result struct {
	Version int       `json:"version"`
	Source  string    `json:"source"`
	Created time.Time `json:"created"`

	// Offset workflow outputs.
	OffsetDistance float64              `json:"offset_distance,omitempty"`
	OffsetEntities []offset.Entity      `json:"offset_entities,omitempty"`
	CornerLoops    [][]geometry.Point2D `json:"corner_loops,omitempty"`
	OffsetEdges    [][]geometry.Segment `json:"offset_edges,omitempty"`

	// Toolpath workflow outputs.
	Entities []entity.Entity `json:"entities,omitempty"`
	GCode    []string        `json:"gcode,omitempty"`
}

// New creates a result bundle for a source drawing.
func New(source string) *Result {
	return &Result{
		Version: 1,
		Source:  source,
		Created: time.Now(),
	}
}

// Load reads a result bundle from a JSON file.
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Save writes the result bundle to a JSON file.
func (r *Result) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
