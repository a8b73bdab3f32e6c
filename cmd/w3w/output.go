// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/spreak"

	what3words "github.com/wneessen/go-what3words"
)

// printGeocodeResult renders a convert result. The plain shape becomes a
// label/value listing, the GeoJSON shape is emitted verbatim so it can be
// piped into GeoJSON tooling.
func printGeocodeResult(t *spreak.Localizer, result *what3words.GeocodeResult) error {
	if result.Format == what3words.FormatGeoJSON {
		return printJSON(result.GeoJSON)
	}

	address := result.Address
	rows := []struct {
		label string
		value string
	}{
		{t.Get("Words"), "///" + address.Words},
		{t.Get("Coordinates"), fmt.Sprintf("%f, %f", address.Coordinates.Lat, address.Coordinates.Lng)},
		{t.Get("Nearest place"), address.NearestPlace},
		{t.Get("Country"), address.Country},
		{t.Get("Language"), address.Language},
		{t.Get("Map"), address.Map},
	}
	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.label); w > width {
			width = w
		}
	}
	for _, row := range rows {
		fmt.Printf("%s  %s\n", runewidth.FillRight(row.label+":", width+1), row.value)
	}
	return nil
}

// printSuggestions renders the suggestion table. Column widths are measured
// in display cells, not runes, since three-word addresses span CJK scripts.
func printSuggestions(t *spreak.Localizer, suggestions []what3words.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Println(t.Get("no suggestions found"))
		return
	}
	wordsWidth := 0
	placeWidth := 0
	for _, suggestion := range suggestions {
		if w := runewidth.StringWidth(suggestion.Words); w > wordsWidth {
			wordsWidth = w
		}
		if w := runewidth.StringWidth(suggestion.NearestPlace); w > placeWidth {
			placeWidth = w
		}
	}
	for _, suggestion := range suggestions {
		fmt.Printf("%d. %s  %s  %s\n", suggestion.Rank,
			runewidth.FillRight(suggestion.Words, wordsWidth),
			runewidth.FillRight(suggestion.NearestPlace, placeWidth),
			suggestion.Country)
	}
}

func printGridSection(result *what3words.GridSectionResult) error {
	if result.Format == what3words.FormatGeoJSON {
		return printJSON(result.GeoJSON)
	}
	for _, line := range result.Grid.Lines {
		fmt.Printf("%f,%f -> %f,%f\n", line.Start.Lat, line.Start.Lng, line.End.Lat, line.End.Lng)
	}
	return nil
}

func printLanguages(languages []what3words.Language) {
	codeWidth := 0
	nameWidth := 0
	for _, lang := range languages {
		if w := runewidth.StringWidth(lang.Code); w > codeWidth {
			codeWidth = w
		}
		if w := runewidth.StringWidth(lang.Name); w > nameWidth {
			nameWidth = w
		}
	}
	for _, lang := range languages {
		fmt.Printf("%s  %s  %s\n",
			runewidth.FillRight(lang.Code, codeWidth),
			runewidth.FillRight(lang.Name, nameWidth),
			lang.NativeName)
	}
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
