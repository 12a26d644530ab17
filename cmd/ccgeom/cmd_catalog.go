// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ccgeom/ccgeom/registry"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the Platonic templates with their counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tV\tE\tF")
			for _, e := range registry.Catalog() {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", int(e.ID), e.Name, e.Counts.Vertices, e.Counts.Edges, e.Counts.Faces)
			}

			return w.Flush()
		},
	}
}

// parseTemplate accepts a catalog name (any case) or a numeric id.
func parseTemplate(s string) (registry.TemplateID, error) {
	if n, err := strconv.Atoi(s); err == nil {
		id := registry.TemplateID(n)
		if _, err = registry.Lookup(id); err != nil {
			return 0, err
		}
		return id, nil
	}
	for _, e := range registry.Catalog() {
		if strings.EqualFold(e.Name, s) {
			return e.ID, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, registry.ErrUnknownTopology)
}
