package main

import (
	"log"

	"github.com/BillJamesM/UdubHacks/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ campusd failed to start: %v", err)
	}
}
