package main

import (
	"log"
	"os"

	"InterestCalc/cmd/interestcalc/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
