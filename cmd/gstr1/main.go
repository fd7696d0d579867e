// Command gstr1 converts a marketplace export on disk into GSTR-1 CSVs without running the server.
//
//	gstr1 convert --portal amazon --format aggregated ready_to_file.xlsx
//	gstr1 b2b --frequency quarterly ready_to_file.xlsx
//	gstr1 portals
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
