package main

import (
	"os"

	"github.com/mshoubaki/Spelling-Bee-Trainer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
