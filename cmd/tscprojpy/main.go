package main

import "github.com/twardoch/tscprojpy/internal/cli"

func main() {
	cli.Execute()
}
