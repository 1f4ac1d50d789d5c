// Package levels loads galaxy level specifications from YAML, TOML or JSON
// documents and provides the built-in default galaxy.
//
// Every format shares one layout: a top-level "levels" table keyed by
// hierarchy level, each entry holding clusters, nodes_per_cluster and
// cum_prob. YAML:
//
//	levels:
//	  0: {clusters: 1, nodes_per_cluster: 20, cum_prob: [1]}
//	  1: {clusters: 6, nodes_per_cluster: 10, cum_prob: [0.7, 0.9, 1]}
//
// TOML:
//
//	[levels.0]
//	clusters = 1
//	nodes_per_cluster = 20
//	cum_prob = [1.0]
//
// Loaded specs are validated with galaxy.Validate before they are returned.
package levels

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/galaxygen/galaxy"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates an unsupported extension or format name.
	ErrUnknownFormat = errors.New("levels: unknown format")
	// ErrBadLevelKey indicates a level key that is not an integer.
	ErrBadLevelKey = errors.New("levels: level key is not an integer")
	// ErrNoLevels indicates a document without a levels table.
	ErrNoLevels = errors.New("levels: no levels table")
)

// Default returns the built-in galaxy: a 20-node core cluster at
// level 0 and six 10-node clusters at level 1 linking 70% locally, 20% to
// the core and 10% to another level-1 cluster.
func Default() galaxy.Spec {
	return galaxy.Spec{
		0: {Clusters: 1, NodesPerCluster: 20, CumProb: []float64{1}},
		1: {Clusters: 6, NodesPerCluster: 10, CumProb: []float64{0.70, 0.90, 1}},
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads, parses and validates the spec stored at path.
func Load(path string) (galaxy.Spec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	spec, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return spec, nil
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, format Format) (galaxy.Spec, error) {
	var (
		raw map[string]galaxy.LevelSpec
		err error
	)
	switch format {
	case FormatYAML:
		raw, err = parseYAML(data)
	case FormatTOML:
		raw, err = parseTOML(data)
	case FormatJSON:
		raw, err = parseJSON(data)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNoLevels
	}

	spec := make(galaxy.Spec, len(raw))
	for key, ls := range raw {
		lvl, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", key, ErrBadLevelKey)
		}
		spec[lvl] = ls
	}
	if err = galaxy.Validate(spec); err != nil {
		return nil, err
	}

	return spec, nil
}

// yamlDoc decodes level keys as integers, the natural YAML reading of "0:".
type yamlDoc struct {
	Levels map[int]galaxy.LevelSpec `yaml:"levels"`
}

func parseYAML(data []byte) (map[string]galaxy.LevelSpec, error) {
	var doc yamlDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("levels: decode yaml: %w", err)
	}
	out := make(map[string]galaxy.LevelSpec, len(doc.Levels))
	for lvl, ls := range doc.Levels {
		out[strconv.Itoa(lvl)] = ls
	}

	return out, nil
}

// tomlDoc keeps string keys; TOML table names are always strings.
type tomlDoc struct {
	Levels map[string]galaxy.LevelSpec `toml:"levels"`
}

func parseTOML(data []byte) (map[string]galaxy.LevelSpec, error) {
	var doc tomlDoc
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("levels: decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("levels: decode toml: unknown key %q", undecoded[0].String())
	}

	return doc.Levels, nil
}

type jsonDoc struct {
	Levels map[string]galaxy.LevelSpec `json:"levels"`
}

func parseJSON(data []byte) (map[string]galaxy.LevelSpec, error) {
	var doc jsonDoc
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("levels: decode json: %w", err)
	}

	return doc.Levels, nil
}
