package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/taskline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "taskline failed: %v\n", err)
		os.Exit(1)
	}
}
