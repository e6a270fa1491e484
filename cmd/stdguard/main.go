package main

import (
	"os"

	"github.com/stdguard/stdguard/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
