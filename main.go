package main

import (
	"os"

	"github.com/tsam3000/flashycardycourse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
