package main

import "github.com/rustyeddy/survival/internal/cli"

func main() {
	cli.Execute()
}
