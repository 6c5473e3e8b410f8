package main

import (
	"github.com/passgate/passgate/internal/cli"
)

func main() {
	cli.Execute()
}
