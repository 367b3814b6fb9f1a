package main

import (
	"github.com/fsgmodding/modcheck/pkg/cli"
)

func main() {
	cli.Execute()
}
