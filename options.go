// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package what3words

import (
	"net/url"
	"strconv"
	"strings"
)

// Options collects the optional parameters of a geocoding request. The zero
// value requests nothing optional. Every setter works on a copy and returns
// it, so an Options value that has been handed out never changes underneath
// its holder and can be shared freely between goroutines.
//
// The four clip dimensions are independent of each other: setting one does
// not clear another, and all of them may be present on a single request. How
// the service resolves overlapping clips is up to the service.
//
// Setters perform no validation. A negative radius or a two-point polygon is
// a calling error that the remote side will reject.
type Options struct {
	focus             *Coordinates
	clipToCountry     []string
	clipToBoundingBox *Square
	clipToCircle      *Circle
	clipToPolygon     Polygon
	language          string
	locale            string
	format            Format
	formatSet         bool
	nResults          int
	nFocusResults     *int
	inputType         string
	preferLand        *bool
}

// Focus sets the point that suggestions are ranked towards. A focus never
// excludes candidates, it only orders them.
func (o Options) Focus(c Coordinates) Options {
	o.focus = &c
	return o
}

// Language sets the word list language (ISO 639-1 code) for results.
func (o Options) Language(code string) Options {
	o.language = code
	return o
}

// Locale sets the locale variant of the word list, e.g. "zh_tr".
func (o Options) Locale(code string) Options {
	o.locale = code
	return o
}

// ClipToCountry restricts suggestions to the given ISO 3166-1 alpha-2
// country codes.
func (o Options) ClipToCountry(codes ...string) Options {
	o.clipToCountry = append([]string(nil), codes...)
	return o
}

// ClipToBoundingBox restricts suggestions to a bounding box.
func (o Options) ClipToBoundingBox(box Square) Options {
	o.clipToBoundingBox = &box
	return o
}

// ClipToCircle restricts suggestions to a circle.
func (o Options) ClipToCircle(circle Circle) Options {
	o.clipToCircle = &circle
	return o
}

// ClipToPolygon restricts suggestions to a polygon of at least three points.
func (o Options) ClipToPolygon(polygon Polygon) Options {
	o.clipToPolygon = append(Polygon(nil), polygon...)
	return o
}

// Format selects between the plain JSON and the GeoJSON response shape.
func (o Options) Format(format Format) Options {
	o.format = format
	o.formatSet = true
	return o
}

// NResults sets the number of autosuggest results to return.
func (o Options) NResults(n int) Options {
	o.nResults = n
	return o
}

// NFocusResults sets how many of the results are ranked by focus proximity.
func (o Options) NFocusResults(n int) Options {
	o.nFocusResults = &n
	return o
}

// InputType declares the source of the input, e.g. "text" or
// "vocon-hybrid", for autosuggest requests.
func (o Options) InputType(inputType string) Options {
	o.inputType = inputType
	return o
}

// PreferLand biases suggestions towards addresses on land.
func (o Options) PreferLand(prefer bool) Options {
	o.preferLand = &prefer
	return o
}

// Values serializes the options into query parameters. Each set option maps
// to exactly one fixed key; unset options are omitted entirely.
func (o Options) Values() url.Values {
	vals := url.Values{}
	if o.focus != nil {
		vals.Set("focus", o.focus.queryValue())
	}
	if len(o.clipToCountry) > 0 {
		vals.Set("clip-to-country", strings.Join(o.clipToCountry, ","))
	}
	if o.clipToBoundingBox != nil {
		vals.Set("clip-to-bounding-box", o.clipToBoundingBox.queryValue())
	}
	if o.clipToCircle != nil {
		vals.Set("clip-to-circle", o.clipToCircle.queryValue())
	}
	if len(o.clipToPolygon) > 0 {
		vals.Set("clip-to-polygon", o.clipToPolygon.queryValue())
	}
	if o.language != "" {
		vals.Set("language", o.language)
	}
	if o.locale != "" {
		vals.Set("locale", o.locale)
	}
	if o.formatSet {
		vals.Set("format", o.format.String())
	}
	if o.nResults > 0 {
		vals.Set("n-result", strconv.Itoa(o.nResults))
	}
	if o.nFocusResults != nil {
		vals.Set("n-focus-result", strconv.Itoa(*o.nFocusResults))
	}
	if o.inputType != "" {
		vals.Set("input-type", o.inputType)
	}
	if o.preferLand != nil {
		vals.Set("prefer-land", strconv.FormatBool(*o.preferLand))
	}
	return vals
}
