// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package what3words

import (
	"encoding/json"
	"fmt"
)

// GeoJSON envelope as returned for format=geojson requests. The geometry
// coordinates stay raw because their nesting depends on the geometry type:
// a Point for the convert endpoints, a MultiLineString for grid sections.

// FeatureCollection is the outer GeoJSON envelope.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
	Bbox     []float64 `json:"bbox,omitempty"`
}

// Feature is a single GeoJSON feature with its geometry and the three-word
// address fields carried in the properties object.
type Feature struct {
	Type       string            `json:"type"`
	Bbox       []float64         `json:"bbox,omitempty"`
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Geometry holds the geometry type and its yet-undecoded coordinates.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// FeatureProperties carries the semantic content of a feature. The fields
// mirror Address; grid section features have an empty properties object.
type FeatureProperties struct {
	Country      string `json:"country,omitempty"`
	NearestPlace string `json:"nearestPlace,omitempty"`
	Words        string `json:"words,omitempty"`
	Language     string `json:"language,omitempty"`
	Locale       string `json:"locale,omitempty"`
	Map          string `json:"map,omitempty"`
}

// Point decodes the geometry as a single GeoJSON position. GeoJSON orders
// positions longitude first.
func (g Geometry) Point() (Coordinates, error) {
	if g.Type != "Point" {
		return Coordinates{}, fmt.Errorf("geometry is of type %q, not a Point", g.Type)
	}
	var position []float64
	if err := json.Unmarshal(g.Coordinates, &position); err != nil {
		return Coordinates{}, fmt.Errorf("failed to decode point coordinates: %w", err)
	}
	if len(position) < 2 {
		return Coordinates{}, fmt.Errorf("point holds %d values, need at least 2", len(position))
	}
	return Coordinates{Lat: position[1], Lng: position[0]}, nil
}

// MultiLineString decodes the geometry as a list of grid lines.
func (g Geometry) MultiLineString() ([][]Coordinates, error) {
	if g.Type != "MultiLineString" {
		return nil, fmt.Errorf("geometry is of type %q, not a MultiLineString", g.Type)
	}
	var positions [][][]float64
	if err := json.Unmarshal(g.Coordinates, &positions); err != nil {
		return nil, fmt.Errorf("failed to decode line coordinates: %w", err)
	}
	lines := make([][]Coordinates, 0, len(positions))
	for _, line := range positions {
		points := make([]Coordinates, 0, len(line))
		for _, position := range line {
			if len(position) < 2 {
				return nil, fmt.Errorf("position holds %d values, need at least 2", len(position))
			}
			points = append(points, Coordinates{Lat: position[1], Lng: position[0]})
		}
		lines = append(lines, points)
	}
	return lines, nil
}
