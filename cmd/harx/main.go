package main

import (
	"fmt"
	"os"

	"github.com/harx-dev/harx"
)

func main() {
	if err := harx.Main(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
