// Command rematch runs the greedy displacement matcher over score matrices
// and bounding-box sets read from YAML or JSON files.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newApp(os.Stdout)).Execute(); err != nil {
		os.Exit(1)
	}
}
