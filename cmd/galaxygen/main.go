// Command galaxygen generates clustered jump-point galaxies.
//
// Examples:
//
//	galaxygen generate --seed 42 --dot galaxy.dot
//	galaxygen generate --config levels.yaml --json galaxy.json --db runs.db
//	galaxygen validate --config levels.toml
//	galaxygen runs --db runs.db
//	galaxygen stats --db runs.db --run 3
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/galaxygen/cmd/galaxygen/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
