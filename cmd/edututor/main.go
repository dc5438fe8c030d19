package main

import (
	"flag"
	"log"

	"github.com/futig/edututor/internal/builder"
)

func main() {
	env := flag.String("env", "local", "environment name, selects the .env.<env> file")
	flag.Parse()

	app, err := builder.Build(*env)
	if err != nil {
		log.Fatal("Failed to build application:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("Application error:", err)
	}
}
