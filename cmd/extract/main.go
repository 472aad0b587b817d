package main

import (
	"log"
	"os"

	"docuextract/internal/cli"
)

func main() {
	if err := cli.NewApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
