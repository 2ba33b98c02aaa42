package main

import "appbar/internal/cli"

func main() {
	cli.Execute()
}
