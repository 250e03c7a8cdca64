package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kyaoi/hexhelp/internal/app"
)

func main() {
	opts, err := app.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Println("Usage: hexhelp [--about] [--config=<path>]")
		os.Exit(1)
	}

	if err := app.Run(opts); err != nil {
		log.Fatal(err)
	}
}
