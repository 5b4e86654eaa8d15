package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/showcase/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		verboseFlag = flag.Bool("verbose", false, "Debug logging (needs log-file in the config)")
	)
	flag.Parse()

	if err := tui.Run(*configFlag, *verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
