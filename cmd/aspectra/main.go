package main

import (
	"github.com/astrolab/aspectra/internal/cli"
)

func main() {
	cli.Execute()
}
