package main

import (
	"hostel/config"
	"hostel/di"
	_ "hostel/docs"
	"hostel/shared/logger"
)

// @title Hostel Front Desk API
// @version 1.0
// @description Room registry, stay history and front desk transitions.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
