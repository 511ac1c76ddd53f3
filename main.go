package main

import (
	"github.com/thanhnguyen2187/psx-vab/cli"
)

func main() {
	cli.Start()
}
