package main

import "github.com/pyver/pyver/pkg/cli"

func main() {
	cli.Execute()
}
