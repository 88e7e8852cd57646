package main

import (
	"os"
	_ "time/tzdata" // --tz must work on hosts without a zoneinfo database

	"github.com/cleared-dev/stmt2csv/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
