// Package main provides the iaconvert CLI: it turns DDR entity and file CSV
// exports into an Internet Archive bulk-upload CSV.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "iaconvert:", err)
		os.Exit(1)
	}
}
