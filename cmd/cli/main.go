// kdac - KovaaK's Data Analysis Companion
//
// kdac parses KovaaK's aim-trainer CSV stat exports and aggregates a
// stats directory into a queryable per-task, per-session index.
package main

import (
	"os"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
