package main

import "araqne-pkg/internal/cli"

func main() {
	cli.Execute()
}
