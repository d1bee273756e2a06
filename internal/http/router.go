package http

import (
	"log"
	"os"

	"github.com/gujaratishikho/backend/internal/config"
	"github.com/gujaratishikho/backend/internal/core/coach"
	"github.com/gujaratishikho/backend/internal/core/learner"
	"github.com/gujaratishikho/backend/internal/core/tts"
	"github.com/gujaratishikho/backend/internal/http/handlers"
	"github.com/gujaratishikho/backend/internal/repo/memory"
	"github.com/gujaratishikho/backend/pkg/ws"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		e := tts.ErrMethodNotAllowed()
		c.JSON(e.Status, gin.H{"error": e.Message})
	})

	gateway := tts.NewGateway(cfg.GoogleTTSAPIKey, cfg.TTSEndpoint)
	repo := memory.NewSessionRepo()
	svc := learner.NewService(repo)
	hub := ws.NewHub()

	var coachClient *coach.Client
	if cfg.GeminiAPIKey != "" {
		var err error
		coachClient, err = coach.New(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("coach disabled: %v", err)
			coachClient = nil
		}
	}

	baseScheme := "http"
	if os.Getenv("TLS") == "1" {
		baseScheme = "https"
	}
	host := os.Getenv("PUBLIC_HOST")
	if host == "" {
		host = "localhost:" + cfg.Port
	}

	th := handlers.NewTTSHandler(gateway)
	ch := handlers.NewContentHandler()
	sh := handlers.NewSessionsHandler(svc, baseScheme, host)
	ph := handlers.NewPracticeHandler(hub, repo)
	kh := handlers.NewCoachHandler(coachClient)

	r.POST("/api/tts", th.Synthesize)

	api := r.Group("/v1")
	api.GET("/voices", ch.Voices)
	api.GET("/categories", ch.Categories)
	api.GET("/sentences", ch.Sentences)
	api.GET("/conversations", ch.Conversations)
	api.GET("/alphabet", ch.Alphabet)
	api.POST("/sessions", sh.Create)
	api.GET("/sessions/:id/summary", sh.Summary)
	api.POST("/coach", kh.Example)
	r.GET("/v1/practice", ph.WS)
	return r
}
