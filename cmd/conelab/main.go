// Command conelab generates ini/fin graphs, edits them and prints Graphviz
// DOT, and splits time ranges into download pages.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
