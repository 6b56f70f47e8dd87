package main

import (
	"os"

	"github.com/user/notewatch/internal/cli"
)

var (
	Version = "dev"
)

func main() {
	if err := cli.Execute(Version); err != nil {
		os.Exit(1)
	}
}
