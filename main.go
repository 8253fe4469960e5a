package main

import (
	"re-savior/cli"
)

func main() {
	cli.Start()
}
