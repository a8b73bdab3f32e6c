// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the w3w command line tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/vorlif/spreak"

	what3words "github.com/wneessen/go-what3words"
	"github.com/wneessen/go-what3words/internal/config"
	"github.com/wneessen/go-what3words/internal/i18n"
	"github.com/wneessen/go-what3words/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usageText = `Usage: w3w [-config <file>] <command> [arguments]

Commands:
  to3wa <lat> <lng>                 convert coordinates to a three-word address
  tocoords <words>                  convert a three-word address to coordinates
  suggest <input>                   suggest three-word addresses for a partial input
  find <text>...                    extract three-word addresses from text (offline)
  check <words>                     check whether words form an existing address
  grid <swLat> <swLng> <neLat> <neLng>
                                    fetch the 3m grid lines for a bounding box
  languages                         list the available word list languages
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	confPath := flag.String("config", "", "path to the config file")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("w3w %s (%s, built %s)\n", version, commit, date)
		return
	}

	// Read config
	conf, err := config.New()
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	// If config file was specified, read it
	if *confPath != "" {
		file := filepath.Base(*confPath)
		path := filepath.Dir(*confPath)
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	command, args := args[0], args[1:]

	// The find command works offline and needs neither API key nor client
	if command == "find" {
		findAddresses(t, strings.Join(args, " "))
		return
	}

	if conf.APIKey == "" {
		log.Error("no API key configured, set W3W_API_KEY or use a config file")
		os.Exit(1)
	}
	opts := make([]what3words.Option, 0)
	if conf.Hostname != "" {
		opts = append(opts, what3words.WithHostname(conf.Hostname))
	}
	opts = append(opts, what3words.WithLogger(log))
	client := what3words.New(conf.APIKey, opts...)

	if err = run(ctx, client, conf, t, command, args); err != nil {
		log.Error("command failed", logger.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, client *what3words.Client, conf *config.Config, t *spreak.Localizer,
	command string, args []string,
) error {
	requestOpts := what3words.Options{}.Language(conf.Language)
	if conf.Format == "geojson" {
		requestOpts = requestOpts.Format(what3words.FormatGeoJSON)
	}

	switch command {
	case "to3wa":
		if len(args) != 2 {
			return fmt.Errorf("to3wa requires a latitude and a longitude")
		}
		coords, err := parseCoordinates(args[0], args[1])
		if err != nil {
			return err
		}
		result, err := client.ConvertTo3wa(ctx, coords, requestOpts)
		if err != nil {
			return err
		}
		return printGeocodeResult(t, result)
	case "tocoords":
		if len(args) != 1 {
			return fmt.Errorf("tocoords requires a three-word address")
		}
		result, err := client.ConvertToCoordinates(ctx, args[0], requestOpts)
		if err != nil {
			return err
		}
		return printGeocodeResult(t, result)
	case "suggest":
		if len(args) != 1 {
			return fmt.Errorf("suggest requires an input string")
		}
		result, err := client.Autosuggest(ctx, args[0], requestOpts)
		if err != nil {
			return err
		}
		printSuggestions(t, result.Suggestions)
		return nil
	case "check":
		if len(args) != 1 {
			return fmt.Errorf("check requires a three-word address")
		}
		return checkAddress(ctx, client, t, args[0])
	case "grid":
		if len(args) != 4 {
			return fmt.Errorf("grid requires four bounding box values")
		}
		box, err := parseBoundingBox(args)
		if err != nil {
			return err
		}
		format := what3words.FormatJSON
		if conf.Format == "geojson" {
			format = what3words.FormatGeoJSON
		}
		result, err := client.GridSection(ctx, box, format)
		if err != nil {
			return err
		}
		return printGridSection(result)
	case "languages":
		languages, err := client.AvailableLanguages(ctx)
		if err != nil {
			return err
		}
		printLanguages(languages.Languages)
		return nil
	default:
		flag.Usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func parseCoordinates(lat, lng string) (what3words.Coordinates, error) {
	latVal, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return what3words.Coordinates{}, fmt.Errorf("failed to parse latitude: %w", err)
	}
	lngVal, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return what3words.Coordinates{}, fmt.Errorf("failed to parse longitude: %w", err)
	}
	return what3words.Coordinates{Lat: latVal, Lng: lngVal}, nil
}

func parseBoundingBox(args []string) (what3words.Square, error) {
	southwest, err := parseCoordinates(args[0], args[1])
	if err != nil {
		return what3words.Square{}, err
	}
	northeast, err := parseCoordinates(args[2], args[3])
	if err != nil {
		return what3words.Square{}, err
	}
	return what3words.Square{Southwest: southwest, Northeast: northeast}, nil
}

func checkAddress(ctx context.Context, client *what3words.Client, t *spreak.Localizer, words string) error {
	if !what3words.IsPossible3wa(words) {
		if what3words.DidYouMean(words) {
			canonical := strings.NewReplacer(" ", ".", "-", ".").Replace(strings.TrimSpace(words))
			fmt.Printf("%s: %s\n", t.Get("did you mean"), canonical)
			return nil
		}
		fmt.Println(t.Get("not a valid three-word address"))
		return nil
	}
	valid, err := client.IsValid3wa(ctx, words)
	if err != nil {
		return err
	}
	if valid {
		fmt.Println(t.Get("valid three-word address"))
		return nil
	}
	fmt.Println(t.Get("not a valid three-word address"))
	return nil
}

func findAddresses(t *spreak.Localizer, text string) {
	matches := what3words.FindPossible3wa(text)
	if len(matches) == 0 {
		fmt.Println(t.Get("no three-word addresses found"))
		return
	}
	for _, match := range matches {
		fmt.Println(match)
	}
}
