package main

import (
	"log"

	"github.com/pyver/pyver/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
