package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/candidate-controls/internal/catalog"
)

// printCatalog writes the grouped catalog in the requested format.
func printCatalog(w io.Writer, format string) error {
	groups := catalog.Groups()
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(groups); err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		return enc.Close()

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(groups); err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}
		return nil

	case "text", "":
		for i, g := range groups {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s\n", g.Label)
			for _, opt := range g.Options {
				fmt.Fprintf(w, "  %-16s %-20s %s\n", opt.Value, opt.Label, opt.Description)
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}
