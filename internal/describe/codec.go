package describe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func DecodeJSON(r io.Reader) (*Description, error) {
	var d Description
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode automaton description: %w", err)
	}
	return &d, nil
}

func DecodeYAML(r io.Reader) (*Description, error) {
	var d Description
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode automaton description: %w", err)
	}
	return &d, nil
}

// Load reads a description file, picking the codec from the extension:
// .json, .yaml/.yml, or .fa for the textual DSL.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(bytes.NewReader(data))
	case ".yaml", ".yml":
		return DecodeYAML(bytes.NewReader(data))
	case ".fa":
		return ParseDSL(string(data))
	default:
		return nil, fmt.Errorf("unsupported description format %q", filepath.Ext(path))
	}
}
