package main

import (
	"os"

	"github.com/dayoung/topikpal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
