// gridcap is a dashboard for electricity-grid capacity data: installed
// capacity by source, PLF-derived rated capacity, monthly history, and a
// daily generation series with year-over-year analytics.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/skanodia/gridcap/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev" //nolint:gochecknoglobals // Overridden by the release build

func main() {
	os.Exit(run())
}

// run executes the root command and maps failures to exit code 1.
// Loading .env is best-effort: a missing file is the normal case.
func run() int {
	_ = godotenv.Load()

	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
