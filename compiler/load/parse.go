package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads blueprint descriptors from a YAML stream. Each document
// in the stream holds one blueprint.
func ParseYAML(r io.Reader) ([]*Blueprint, error) {
	dec := yaml.NewDecoder(r)
	var bps []*Blueprint
	for {
		bp := &Blueprint{}
		if err := dec.Decode(bp); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("load: decode blueprint document: %w", err)
		}
		if err := bp.Validate(); err != nil {
			return nil, err
		}
		bps = append(bps, bp)
	}
	return bps, nil
}

// ParseJSON reads blueprint descriptors from JSON data: either a single
// blueprint object or an array of them.
func ParseJSON(data []byte) ([]*Blueprint, error) {
	data = bytes.TrimSpace(data)
	var bps []*Blueprint
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &bps); err != nil {
			return nil, fmt.Errorf("load: decode blueprint array: %w", err)
		}
	} else {
		bp := &Blueprint{}
		if err := json.Unmarshal(data, bp); err != nil {
			return nil, fmt.Errorf("load: decode blueprint object: %w", err)
		}
		bps = append(bps, bp)
	}
	for _, bp := range bps {
		if err := bp.Validate(); err != nil {
			return nil, err
		}
	}
	return bps, nil
}

// ParseFile reads blueprint descriptors from a single file, selecting the
// format by extension (.yaml, .yml or .json).
func ParseFile(path string) ([]*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(bytes.NewReader(data))
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("load: unsupported descriptor format %q in %s", ext, path)
	}
}

// ParseDir reads blueprint descriptors from every descriptor file in a
// directory, in lexical file order. Non-descriptor files are skipped.
func ParseDir(dir string) ([]*Blueprint, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load: read dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	var bps []*Blueprint
	for _, p := range paths {
		parsed, err := ParseFile(p)
		if err != nil {
			return nil, err
		}
		bps = append(bps, parsed...)
	}
	return bps, nil
}
