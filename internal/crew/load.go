package crew

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefinitionFile pairs a parsed crew definition with its on-disk source.
type DefinitionFile struct {
	Definition Definition
	Path       string
}

// Load parses every *.yaml / *.yml file in dir into crew definitions, sorted
// by file name for deterministic output. Parsing is strict: unknown fields are
// rejected so typos in definition files fail fast instead of being silently
// dropped by the framework.
func Load(dir string) ([]DefinitionFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read crew definitions dir: %w", err)
	}

	var files []DefinitionFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		def, err := parseFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not parse crew definition %s: %w", path, err)
		}

		files = append(files, DefinitionFile{Definition: def, Path: path})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, nil
}

// ValidateAll validates every loaded definition and additionally rejects
// duplicate crew names across files.
func ValidateAll(files []DefinitionFile) error {
	crews := make(map[string]string, len(files))
	for _, file := range files {
		if err := file.Definition.Validate(); err != nil {
			return fmt.Errorf("%s: %w", file.Path, err)
		}

		name := strings.TrimSpace(file.Definition.Crew)
		if prev, exists := crews[name]; exists {
			return fmt.Errorf("%s: crew %q already defined in %s", file.Path, name, prev)
		}
		crews[name] = file.Path
	}

	return nil
}

func parseFile(path string) (Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return Definition{}, err
	}

	// reject trailing documents, one crew per file
	if err := dec.Decode(new(Definition)); !errors.Is(err, io.EOF) {
		return Definition{}, fmt.Errorf("expected a single document")
	}

	return def, nil
}
