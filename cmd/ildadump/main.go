package main

import (
	"context"
	"log"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
