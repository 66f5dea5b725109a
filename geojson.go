package main

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"navmesh-planner/pathfinder"
)

// routeFeatureCollection exports a search result for map clients: the path
// as a LineString and each explored cell as a Polygon tagged with its role
func routeFeatureCollection(mesh *pathfinder.Mesh, result pathfinder.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(result.Path) > 0 {
		line := make(orb.LineString, 0, len(result.Path))
		for _, p := range result.Path {
			line = append(line, p.Orb())
		}
		feature := geojson.NewFeature(line)
		feature.Properties["kind"] = "path"
		feature.Properties["distance"] = result.Cost
		fc.Append(feature)
	}

	for _, cell := range exploredCells(mesh, result.Explored) {
		feature := geojson.NewFeature(mesh.Box(pathfinder.CellID(cell.Cell)).Bound().ToPolygon())
		feature.Properties["kind"] = "cell"
		feature.Properties["cell"] = cell.Cell
		feature.Properties["role"] = string(cell.Role)
		fc.Append(feature)
	}

	return fc
}

// meshFeatureCollection exports every cell of a mesh as a Polygon
func meshFeatureCollection(mesh *pathfinder.Mesh) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, box := range mesh.Boxes() {
		feature := geojson.NewFeature(box.Bound().ToPolygon())
		feature.Properties["cell"] = i
		fc.Append(feature)
	}
	return fc
}

// ExploredCell is one entry of the diagnostics list in a route response
type ExploredCell struct {
	Cell int             `json:"cell"`
	Box  [4]float64      `json:"box"` // x_min, x_max, y_min, y_max
	Role pathfinder.Role `json:"role"`
}

// exploredCells flattens the role map in cell order
func exploredCells(mesh *pathfinder.Mesh, explored map[pathfinder.CellID]pathfinder.Role) []ExploredCell {
	cells := make([]ExploredCell, 0, len(explored))
	for id, role := range explored {
		box := mesh.Box(id)
		cells = append(cells, ExploredCell{
			Cell: int(id),
			Box:  [4]float64{box.MinX, box.MaxX, box.MinY, box.MaxY},
			Role: role,
		})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Cell < cells[j].Cell })
	return cells
}
