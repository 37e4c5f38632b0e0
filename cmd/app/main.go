package main

import (
	"supplychain/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		log.Fatalf("supplychain: %v", err)
	}
}
