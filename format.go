// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package what3words

import (
	"encoding/json"
	"errors"
)

// Format selects the response shape of a geocoding request. It travels with
// the request as the format query parameter and decides how the response
// body is decoded; the dispatcher never sniffs the payload.
type Format int

const (
	// FormatJSON requests the plain JSON address model. It is the zero
	// value and therefore the default.
	FormatJSON Format = iota
	// FormatGeoJSON requests the GeoJSON FeatureCollection model.
	FormatGeoJSON
)

// String returns the wire value of the format.
func (f Format) String() string {
	if f == FormatGeoJSON {
		return "geojson"
	}
	return "json"
}

// GeocodeResult is the outcome of a convert request. Exactly one of Address
// and GeoJSON is set, matching the Format the request was built with.
type GeocodeResult struct {
	Format  Format
	Address *Address
	GeoJSON *FeatureCollection
}

// GridSectionResult is the outcome of a grid section request. Exactly one of
// Grid and GeoJSON is set, matching the Format the request was built with.
type GridSectionResult struct {
	Format  Format
	Grid    *GridSection
	GeoJSON *FeatureCollection
}

// decodeGeocodeResult decodes a raw convert response into the model that the
// requested format prescribes. A body that unmarshals but lacks the
// structure of that model is a decode failure, not an empty result.
func decodeGeocodeResult(format Format, raw []byte) (*GeocodeResult, error) {
	if format == FormatGeoJSON {
		collection, err := decodeFeatureCollection(raw)
		if err != nil {
			return nil, err
		}
		return &GeocodeResult{Format: format, GeoJSON: collection}, nil
	}

	address := new(Address)
	if err := json.Unmarshal(raw, address); err != nil {
		return nil, &DecodeError{Format: format, err: err}
	}
	if address.Words == "" {
		return nil, &DecodeError{Format: format, err: errors.New("response carries no words field")}
	}
	return &GeocodeResult{Format: format, Address: address}, nil
}

// decodeGridSection decodes a raw grid-section response, analogous to
// decodeGeocodeResult.
func decodeGridSection(format Format, raw []byte) (*GridSectionResult, error) {
	if format == FormatGeoJSON {
		collection, err := decodeFeatureCollection(raw)
		if err != nil {
			return nil, err
		}
		return &GridSectionResult{Format: format, GeoJSON: collection}, nil
	}

	grid := new(GridSection)
	if err := json.Unmarshal(raw, grid); err != nil {
		return nil, &DecodeError{Format: format, err: err}
	}
	if len(grid.Lines) == 0 {
		return nil, &DecodeError{Format: format, err: errors.New("response carries no grid lines")}
	}
	return &GridSectionResult{Format: format, Grid: grid}, nil
}

func decodeFeatureCollection(raw []byte) (*FeatureCollection, error) {
	collection := new(FeatureCollection)
	if err := json.Unmarshal(raw, collection); err != nil {
		return nil, &DecodeError{Format: FormatGeoJSON, err: err}
	}
	if collection.Type != "FeatureCollection" || len(collection.Features) == 0 {
		return nil, &DecodeError{Format: FormatGeoJSON, err: errors.New("response is not a FeatureCollection")}
	}
	return collection, nil
}
