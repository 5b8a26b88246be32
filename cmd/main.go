package main

import "fxcalc/internal/cli"

func main() {
	cli.Execute()
}
