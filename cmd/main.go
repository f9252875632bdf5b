package main

import (
	"github.com/gueleresra1/Yemeksystem/config"
	"github.com/gueleresra1/Yemeksystem/logger"
	"github.com/gueleresra1/Yemeksystem/routes"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	config.InitDB()

	r := routes.SetupRouter()
	addr := ":" + config.GetEnv("PORT", "8080")
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
