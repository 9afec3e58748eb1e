package main

import (
	"os"

	"github.com/dshills/langmerge/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
