// Schema command for the iaconvert CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denshoproject/ddr-iaconvert/internal/convert"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the output column set",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, col := range convert.Columns {
			fmt.Println(col)
		}
	},
}
