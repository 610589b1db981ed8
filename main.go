package main

import (
	"log"

	"github.com/hirebyte/hr-assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
