package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/gujaratishikho/backend/internal/core/content"
	"github.com/gujaratishikho/backend/internal/core/quiz"
	"github.com/gujaratishikho/backend/internal/repo/memory"
	"github.com/gujaratishikho/backend/pkg/ws"
)

// PracticeHandler runs the live quiz loop over a websocket. The client picks
// a category, the server deals questions one at a time and scores answers
// against the learner session.
type PracticeHandler struct {
	Hub      *ws.Hub
	Repo     *memory.SessionRepo
	Upgrader websocket.Upgrader
}

func NewPracticeHandler(h *ws.Hub, r *memory.SessionRepo) *PracticeHandler {
	return &PracticeHandler{
		Hub:  h,
		Repo: r,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type practiceMsg struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

func (h *PracticeHandler) WS(c *gin.Context) {
	id := c.Query("sess")
	if id == "" {
		c.Status(http.StatusBadRequest)
		return
	}
	if _, ok := h.Repo.Get(id); !ok {
		c.Status(http.StatusNotFound)
		return
	}
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.Hub.Add(id, conn)
	defer func() {
		h.Hub.Remove(id)
		conn.Close()
	}()

	conn.SetReadLimit(1 << 20)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	categories := make([]string, 0, len(content.Categories))
	for _, cat := range content.Categories {
		categories = append(categories, cat.ID)
	}
	_ = conn.WriteJSON(gin.H{
		"type":       "hello",
		"ts":         time.Now().UnixMilli(),
		"categories": categories,
	})

	engine := quiz.New()
	var (
		round    []quiz.Question
		current  int
		score    int
		category string
	)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var m practiceMsg
		if err := json.Unmarshal(msg, &m); err != nil {
			continue
		}

		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		switch m.Type {
		case "start":
			round, err = engine.Round(m.Category)
			if err != nil {
				if werr := conn.WriteJSON(gin.H{"type": "error", "error": err.Error()}); werr != nil {
					return
				}
				continue
			}
			category = m.Category
			current = 0
			score = 0
			if err := h.sendQuestion(conn, round, current); err != nil {
				return
			}

		case "answer":
			if round == nil || current >= len(round) {
				continue
			}
			q := round[current]
			ok := q.Correct(m.Answer)
			h.Repo.RecordAnswer(id, ok)
			if ok {
				score++
			}
			if err := conn.WriteJSON(gin.H{
				"type":    "result",
				"correct": ok,
				"answer":  q.Answer,
			}); err != nil {
				return
			}
			current++
			if current < len(round) {
				if err := h.sendQuestion(conn, round, current); err != nil {
					return
				}
			} else {
				h.Repo.RecordQuizScore(id, category, score)
				total := len(round)
				round = nil
				if err := conn.WriteJSON(gin.H{
					"type":  "finished",
					"score": score,
					"total": total,
				}); err != nil {
					return
				}
			}

		case "learned":
			if m.Category != "" {
				h.Repo.MarkLearned(id, m.Category)
			}
		}
	}
}

func (h *PracticeHandler) sendQuestion(conn *websocket.Conn, round []quiz.Question, idx int) error {
	return conn.WriteJSON(gin.H{
		"type":     "question",
		"index":    idx + 1,
		"total":    len(round),
		"question": round[idx],
	})
}
