package zone

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a zone file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Legacy single-byte encodings accepted for zone files exported by older tools.
var charmaps = map[string]*charmap.Charmap{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"windows-1251": charmap.Windows1251,
	"cp1251":       charmap.Windows1251,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("zone: unknown file extension: %s", path)
}

// Load reads, decodes and validates a zone file. An empty encoding means UTF-8.
func Load(path, encoding string) (*Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("zone: read %s: %w", path, err)
	}

	set, err := Parse(raw, format, encoding)
	if err != nil {
		return nil, fmt.Errorf("zone: parse %s: %w", path, err)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("zones", len(set.Zones)).
		Msg("loaded zone file")

	return set, nil
}

// Parse decodes raw zone file contents without validating them.
func Parse(raw []byte, format Format, encoding string) (*Set, error) {
	text, err := decodeText(raw, encoding)
	if err != nil {
		return nil, err
	}

	var set Set
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(text))
		dec.KnownFields(true)
		if err := dec.Decode(&set); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(text))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&set); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return &set, nil
}

func decodeText(raw []byte, encoding string) ([]byte, error) {
	name := strings.ToLower(strings.TrimSpace(encoding))
	if name == "" || name == "utf-8" || name == "utf8" {
		return raw, nil
	}
	cm, ok := charmaps[name]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
	return cm.NewDecoder().Bytes(raw)
}
