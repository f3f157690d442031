// Package render writes a dashboard snapshot as JSON, YAML or a static
// HTML page.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/dashboard/internal/dashboard"
)

// Formats accepted by Write.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHTML = "html"
)

// Write renders snap in the named format.
func Write(w io.Writer, formatName string, snap dashboard.Snapshot) error {
	switch strings.ToLower(formatName) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
		return nil
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	case FormatHTML:
		return HTML(w, snap)
	}
	return fmt.Errorf("unknown format %q (want json, yaml or html)", formatName)
}
