package main

import (
	"fmt"
	"os"

	"github.com/TudorHulban/appearance/internal/cli"
)

func main() {
	if err := cli.NewApp(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
