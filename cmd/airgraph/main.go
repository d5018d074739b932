// Command airgraph loads a flight-route CSV and answers connectivity,
// spanning-tree, shortest-path and farthest-airport queries from the command
// line or over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "airgraph:", err)
		os.Exit(1)
	}
}
