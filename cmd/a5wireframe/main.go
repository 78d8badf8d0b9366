// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command a5wireframe emits a GeoJSON FeatureCollection of A5 cell
// boundaries for a dodecahedron origin at a given resolution, mirroring
// the upstream examples/wireframe tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/a5dggs/a5go"
)

type geoJSONFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   geoJSONPolygon         `json:"geometry"`
}

type geoJSONPolygon struct {
	Type        string          `json:"type"`
	Coordinates [][][2]float64  `json:"coordinates"`
}

type geoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

func main() {
	resolution := flag.Int("resolution", 1, "resolution of the cells to emit")
	origin := flag.Int("origin", -1, "restrict output to a single origin id (0-11); -1 for all")
	segments := flag.Int("segments", 1, "boundary edge subdivision segments")
	bboxFlag := flag.String("bbox", "", "restrict output to cells whose center falls in west,south,east,north (decimal degrees)")
	flag.Parse()

	cells, err := cellsForOrigin(*resolution, *origin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "a5wireframe:", err)
		os.Exit(1)
	}

	var clip *a5.BBox
	if *bboxFlag != "" {
		b, err := parseBBox(*bboxFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "a5wireframe:", err)
			os.Exit(1)
		}
		clip = &b

		estimate, err := b.CellEstimate(*resolution)
		if err != nil {
			fmt.Fprintln(os.Stderr, "a5wireframe:", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "a5wireframe: bbox covers an estimated %d cells at resolution %d\n", estimate, *resolution)
	}

	fc := geoJSONFeatureCollection{Type: "FeatureCollection"}
	for _, cell := range cells {
		if clip != nil {
			center, err := a5.CellToLonLat(cell)
			if err != nil || !clip.Contains(center) {
				continue
			}
		}

		boundary, err := a5.CellToBoundary(cell, a5.CellToBoundaryOptions{Segments: *segments})
		if err != nil {
			fmt.Fprintln(os.Stderr, "a5wireframe: cell", cell, ":", err)
			continue
		}

		ring := make([][2]float64, 0, len(boundary))
		for _, p := range boundary {
			ring = append(ring, [2]float64{p.Longitude, p.Latitude})
		}

		fc.Features = append(fc.Features, geoJSONFeature{
			Type:       "Feature",
			Properties: map[string]interface{}{"cell": cell.String()},
			Geometry:   geoJSONPolygon{Type: "Polygon", Coordinates: [][][2]float64{ring}},
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		fmt.Fprintln(os.Stderr, "a5wireframe:", err)
		os.Exit(1)
	}
}

func parseBBox(s string) (a5.BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return a5.BBox{}, fmt.Errorf("bbox %q: expected west,south,east,north", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return a5.BBox{}, fmt.Errorf("bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	return a5.BBox{West: vals[0], South: vals[1], East: vals[2], North: vals[3]}, nil
}

func cellsForOrigin(resolution, origin int) ([]a5.CellID, error) {
	roots := a5.GetRes0Cells()
	if origin >= 0 {
		if origin >= len(roots) {
			return nil, fmt.Errorf("origin %d out of range (0-%d)", origin, len(roots)-1)
		}
		roots = roots[origin : origin+1]
	}

	var cells []a5.CellID
	for _, root := range roots {
		children, err := a5.CellToChildren(root, resolution)
		if err != nil {
			return nil, err
		}
		cells = append(cells, children...)
	}
	return cells, nil
}
