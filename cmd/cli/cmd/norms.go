// Package cmd - norms command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"unity-check/core/types"
)

// normsCmd prints the norm limit table
var normsCmd = &cobra.Command{
	Use:   "norms",
	Short: "Print the allowable-load norm table",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("NORM  MAX MASS")
		for _, n := range types.Norms() {
			max, _ := n.MaxMass()
			fmt.Printf("%-5s %s kg\n", n, max.String())
		}
	},
}
