package main

import (
	"log"

	"github.com/fsgmodding/modcheck/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
