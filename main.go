package main

import (
	"os"

	"github.com/campusclubs/clubhub/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
