// Command fixtool evaluates fixed-point operations and exports the
// trigonometric lookup tables of package fix.
package main

import (
	"os"

	"github.com/gogpu/fix/cmd/fixtool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
