package main

import (
	"log"
	"time"

	"github.com/Ondrysak/GastroTartarus/config"
	"github.com/Ondrysak/GastroTartarus/routes"
	"github.com/Ondrysak/GastroTartarus/services"
	"github.com/Ondrysak/GastroTartarus/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service disabled: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	// daily scan for pantry entries expiring within a week
	stop := services.StartExpiryWorker(config.DB, 24*time.Hour, 7)
	defer close(stop)

	r := routes.SetupRouter(hub, push)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
