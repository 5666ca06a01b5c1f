package main

import (
	"os"

	"github.com/dshills/code-review/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
