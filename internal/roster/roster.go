// Package roster provides actor names, read from a file or generated.
package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the names file looked up when none is configured.
const DefaultFile = "names.txt"

// Load reads names from path. YAML files hold a plain list or a mapping
// with a "names" list; anything else is read one name per line. Blank
// lines and surrounding spaces are dropped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		names, err := decodeYAML(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode roster %s: %w", path, err)
		}
		return names, nil
	}
	return readLines(f)
}

func decodeYAML(r io.Reader) ([]string, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return []string{}, nil
		}
		return nil, err
	}

	var list []string
	if err := node.Decode(&list); err == nil {
		return clean(list), nil
	}
	var doc struct {
		Names []string `yaml:"names"`
	}
	if err := node.Decode(&doc); err != nil {
		return nil, err
	}
	return clean(doc.Names), nil
}

func readLines(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		names = append(names, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return clean(names), nil
}

func clean(in []string) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Numbered returns n generated names, Actor-001 onwards.
func Numbered(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Actor-%03d", i+1)
	}
	return names
}
