// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify V E F",
		Short: "Map a (vertices, edges, faces) triple to its catalog id",
		Example: `  ccgeom classify 8 12 6
  ccgeom classify 5 9 6   # Euler-valid but not Platonic: unknown topology`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n [3]int
			for i, s := range args {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("argument %d (%q) is not an integer", i+1, s)
				}
				n[i] = v
			}
			id, err := a.engine.Classify(n[0], n[1], n[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", int(id), id)

			return nil
		},
	}
}
