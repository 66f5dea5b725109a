package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"

	"navmesh-planner/pathfinder"
)

// meshFile is the JSON mesh layout. Each box is (x1, x2, y1, y2). Other keys,
// such as a precomputed adjacency table, are ignored since adjacency is
// derived from the boxes.
type meshFile struct {
	Boxes [][4]float64 `json:"boxes" jsonschema:"description=Axis-aligned cells as x_min then x_max then y_min then y_max"`
}

var errEmptyMesh = errors.New("mesh has no boxes")

// loadMeshFile reads a mesh from a .json boxes file or a .geojson feature
// collection
func loadMeshFile(filename string) ([]pathfinder.Box, error) {
	log.Printf("📂 Loading mesh from %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var boxes []pathfinder.Box
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".geojson":
		boxes, err = parseGeoJSONMesh(data)
	default:
		boxes, err = parseBoxesJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(filename), err)
	}

	log.Printf("   ✅ Mesh loaded: %d boxes\n", len(boxes))
	return boxes, nil
}

// parseBoxesJSON decodes the {"boxes": [[x1, x2, y1, y2], ...]} layout
func parseBoxesJSON(data []byte) ([]pathfinder.Box, error) {
	var file meshFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mesh: %w", err)
	}
	return boxesFromTuples(file.Boxes)
}

func boxesFromTuples(tuples [][4]float64) ([]pathfinder.Box, error) {
	if len(tuples) == 0 {
		return nil, errEmptyMesh
	}
	boxes := make([]pathfinder.Box, 0, len(tuples))
	for _, t := range tuples {
		boxes = append(boxes, pathfinder.NewBox(t[0], t[1], t[2], t[3]))
	}
	return boxes, nil
}

// parseGeoJSONMesh turns every feature of a FeatureCollection into the box
// bounding its geometry
func parseGeoJSONMesh(data []byte) ([]pathfinder.Box, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal feature collection: %w", err)
	}

	boxes := make([]pathfinder.Box, 0, len(fc.Features))
	for i, feature := range fc.Features {
		if feature.Geometry == nil {
			log.Printf("⚠️  Skipping feature %d without geometry\n", i)
			continue
		}
		bound := feature.Geometry.Bound()
		boxes = append(boxes, pathfinder.NewBox(bound.Min[0], bound.Max[0], bound.Min[1], bound.Max[1]))
	}
	if len(boxes) == 0 {
		return nil, errEmptyMesh
	}
	return boxes, nil
}

func tuplesFromBoxes(boxes []pathfinder.Box) [][4]float64 {
	tuples := make([][4]float64, 0, len(boxes))
	for _, b := range boxes {
		tuples = append(tuples, [4]float64{b.MinX, b.MaxX, b.MinY, b.MaxY})
	}
	return tuples
}

// saveMeshFile writes boxes in the JSON mesh layout
func saveMeshFile(boxes []pathfinder.Box, filename string) error {
	log.Printf("💾 Saving mesh to %s...\n", filename)

	data, err := json.MarshalIndent(meshFile{Boxes: tuplesFromBoxes(boxes)}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal mesh: %w", err)
	}

	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("   ✅ Mesh saved (%d bytes)\n", len(data))
	return nil
}
