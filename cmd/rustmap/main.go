package main

import "rustmap/internal/cli"

func main() {
	cli.Execute()
}
