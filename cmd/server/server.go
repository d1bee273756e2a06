package main

import (
	"io"
	"log"
	"os"

	"github.com/gujaratishikho/backend/internal/config"
	h "github.com/gujaratishikho/backend/internal/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.LogFile != "" {
		rot := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		log.SetOutput(io.MultiWriter(os.Stderr, rot))
		gin.DefaultWriter = io.MultiWriter(os.Stdout, rot)
	}

	r := h.NewRouter(cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
