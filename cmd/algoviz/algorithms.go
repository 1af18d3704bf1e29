// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the algorithm names each command accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, fam := range algoviz.Catalog() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", fam.Name, strings.Join(fam.Algorithms, ", ")); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
