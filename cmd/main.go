package main

import (
	"log/slog"
	"os"

	"fieldsync/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// release mode unless explicitly overridden, so a misconfiguration never exposes debug output
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           fieldsync
// @version         1.0
// @description     Synchronization and consensus core for offline-first field operations.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		slog.Error("fieldsync exited with error", "error", err.Error())
		os.Exit(1)
	}
}
