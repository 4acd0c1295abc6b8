package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/HerbHall/drivepick/internal/discovery"
	"github.com/HerbHall/drivepick/internal/selector"
	"github.com/HerbHall/drivepick/pkg/catalog"
	"github.com/HerbHall/drivepick/pkg/models"
)

// selectionDocument is the --file input. YAML is a superset of JSON, so one
// decoder reads both.
type selectionDocument struct {
	Catalog       []any `yaml:"catalog"`
	Availability  []any `yaml:"availability"`
	Manufacturers []any `yaml:"manufacturers"`
}

type selectOptions struct {
	file          string
	source        string
	manufacturers []string
}

func newSelectCmd(a *app) *cobra.Command {
	var opts selectOptions
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select available drives matching manufacturer fragments",
		Example: `  drivepick select
  drivepick select --source inventory --manufacturer Kingston
  drivepick select --file listing.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			override := cmd.Flags().Changed("manufacturer")
			sel, err := a.runSelect(cmd.Context(), opts, override)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), sel)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML or JSON document with catalog, availability and manufacturers")
	cmd.Flags().StringVar(&opts.source, "source", "builtin", "catalog source when no --file is given: builtin, inventory or sysfs")
	cmd.Flags().StringArrayVarP(&opts.manufacturers, "manufacturer", "m", nil, "manufacturer fragment; repeat for several")
	return cmd
}

// runSelect resolves the catalog and fragments and runs the selection.
// override reports whether --manufacturer was given, even as "".
func (a *app) runSelect(ctx context.Context, opts selectOptions, override bool) (models.Selection, error) {
	if opts.file != "" {
		doc, err := readSelectionDocument(opts.file)
		if err != nil {
			return models.Selection{}, err
		}
		if override {
			doc.Manufacturers = make([]any, len(opts.manufacturers))
			for i, m := range opts.manufacturers {
				doc.Manufacturers[i] = m
			}
		}
		return selector.SelectValues(doc.Catalog, doc.Availability, doc.Manufacturers)
	}

	manufacturers := a.settings.Selection.Manufacturers
	if override {
		manufacturers = opts.manufacturers
	}

	src, closeFn, err := a.source(ctx, opts.source)
	if err != nil {
		return models.Selection{}, err
	}
	defer closeFn()

	return selector.NewEngine(opts.source, src, a.logger, nil).Select(ctx, manufacturers)
}

// source opens the named catalog source.
func (a *app) source(ctx context.Context, name string) (selector.Source, func(), error) {
	switch name {
	case "builtin":
		return catalog.NewCatalog(), func() {}, nil
	case "inventory":
		db, repo, err := a.openInventory(ctx)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { db.Close() }, nil
	case "sysfs":
		return discovery.NewScanner(a.settings.Discovery.Root, a.logger), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown source %q (want builtin, inventory or sysfs)", name)
}

func readSelectionDocument(path string) (selectionDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return selectionDocument{}, fmt.Errorf("read selection document: %w", err)
	}
	var doc selectionDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return selectionDocument{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
