// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package what3words

import (
	"strconv"
	"strings"
)

// Coordinates is a WGS84 point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Square is the bounding box of a 3m x 3m grid cell, southwest and northeast
// corner. It doubles as the bounding box argument for clipping and grid
// section requests.
type Square struct {
	Southwest Coordinates `json:"southwest"`
	Northeast Coordinates `json:"northeast"`
}

// Circle is a circular clipping area around a center point.
type Circle struct {
	Center       Coordinates
	RadiusMeters float64
}

// Polygon is an ordered ring of at least three points. The first and last
// point do not need to coincide, closure is implicit.
type Polygon []Coordinates

// Address is the plain JSON representation of a three-word address as
// returned by the convert endpoints.
type Address struct {
	Country      string      `json:"country"`
	Square       Square      `json:"square"`
	NearestPlace string      `json:"nearestPlace"`
	Coordinates  Coordinates `json:"coordinates"`
	Words        string      `json:"words"`
	Language     string      `json:"language"`
	Locale       string      `json:"locale,omitempty"`
	Map          string      `json:"map"`
}

// Suggestion is a single autosuggest candidate.
type Suggestion struct {
	Country           string       `json:"country"`
	NearestPlace      string       `json:"nearestPlace"`
	Words             string       `json:"words"`
	Rank              int          `json:"rank"`
	Language          string       `json:"language"`
	DistanceToFocusKm float64      `json:"distanceToFocusKm,omitempty"`
	Square            *Square      `json:"square,omitempty"`
	Coordinates       *Coordinates `json:"coordinates,omitempty"`
	Map               string       `json:"map,omitempty"`
}

// Autosuggest is the response of the autosuggest endpoints.
type Autosuggest struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Language describes one of the word list languages the API supports.
type Language struct {
	NativeName string `json:"nativeName"`
	Code       string `json:"code"`
	Name       string `json:"name"`
}

// AvailableLanguages is the response of the available-languages endpoint.
type AvailableLanguages struct {
	Languages []Language `json:"languages"`
}

// Line is a single grid line between two points.
type Line struct {
	Start Coordinates `json:"start"`
	End   Coordinates `json:"end"`
}

// GridSection is the plain JSON representation of a grid section.
type GridSection struct {
	Lines []Line `json:"lines"`
}

// formatFloat renders a float in its shortest decimal form that survives a
// round trip, which is the canonical wire formatting for all coordinate and
// radius values.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (c Coordinates) queryValue() string {
	return formatFloat(c.Lat) + "," + formatFloat(c.Lng)
}

func (s Square) queryValue() string {
	return strings.Join([]string{
		formatFloat(s.Southwest.Lat), formatFloat(s.Southwest.Lng),
		formatFloat(s.Northeast.Lat), formatFloat(s.Northeast.Lng),
	}, ",")
}

func (c Circle) queryValue() string {
	return c.Center.queryValue() + "," + formatFloat(c.RadiusMeters)
}

func (p Polygon) queryValue() string {
	parts := make([]string, 0, len(p)*2)
	for _, point := range p {
		parts = append(parts, formatFloat(point.Lat), formatFloat(point.Lng))
	}
	return strings.Join(parts, ",")
}
