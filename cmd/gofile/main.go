package main

import (
	"os"

	"github.com/dl/gofile/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
