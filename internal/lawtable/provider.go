// Package lawtable loads the versioned gift tax law table and holds the
// process-wide copy.
package lawtable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gifttax/internal/model"

	"gopkg.in/yaml.v3"
)

// PlaceholderMarker flags a template that has not been filled in yet
const PlaceholderMarker = "PLACEHOLDER"

// Load reads the law table at path. It never fails: a missing, unreadable or
// structurally broken file yields an unconfigured context with Problem set.
func Load(path string) model.LawContext {
	lc := model.LawContext{Source: path, LoadedAt: time.Now()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			lc.Problem = "law table not found"
		} else {
			lc.Problem = fmt.Sprintf("failed to read law table: %v", err)
		}
		return lc
	}

	table, placeholder, err := Parse(raw)
	if err != nil {
		lc.Problem = err.Error()
		return lc
	}

	lc.Table = table
	lc.Configured = !placeholder
	if placeholder {
		lc.Problem = "law table still contains " + PlaceholderMarker + " values"
	}
	return lc
}

// Parse decodes a YAML law table. An empty document is an empty table. The
// returned flag reports whether any key or value contains the placeholder
// marker.
func Parse(raw []byte) (*model.LawTable, bool, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, false, fmt.Errorf("invalid law table yaml: %w", err)
	}

	table := &model.LawTable{}
	if doc.Kind == 0 || isNullDocument(&doc) {
		return table, false, nil
	}

	placeholder := containsMarker(&doc, PlaceholderMarker)
	if err := doc.Decode(table); err != nil {
		return nil, placeholder, fmt.Errorf("unexpected law table layout: %w", err)
	}
	return table, placeholder, nil
}

func isNullDocument(doc *yaml.Node) bool {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return false
	}
	root := doc.Content[0]
	return root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null"
}

func containsMarker(n *yaml.Node, marker string) bool {
	if strings.Contains(n.Value, marker) {
		return true
	}
	for _, child := range n.Content {
		if containsMarker(child, marker) {
			return true
		}
	}
	return false
}
