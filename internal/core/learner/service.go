package learner

import (
	"fmt"
	"time"

	"github.com/gujaratishikho/backend/internal/core/tts"
	"github.com/gujaratishikho/backend/internal/repo/memory"
	"github.com/gujaratishikho/backend/pkg/types"

	"github.com/google/uuid"
)

type Service struct {
	Repo *memory.SessionRepo
}

func NewService(repo *memory.SessionRepo) *Service {
	return &Service{Repo: repo}
}

// Create opens a learner session. The voice is held to the same allow-list
// as the synthesis gateway and the rate to the same clamp, so everything a
// session later speaks is already valid.
func (s *Service) Create(voice string, rate float64) (*memory.LearnerSession, error) {
	if voice == "" {
		voice = tts.DefaultVoice
	}
	if !tts.VoiceAllowed(voice) {
		return nil, fmt.Errorf("voice %q not allowed", voice)
	}
	sess := &memory.LearnerSession{
		ID:        "sess_" + uuid.NewString(),
		CreatedAt: time.Now(),
		Voice:     voice,
		Rate:      tts.ClampRate(rate),
		Progress:  map[string]*memory.CategoryProgress{},
	}
	s.Repo.Save(sess)
	return sess, nil
}

func (s *Service) Summary(id string) (types.SummaryResp, bool) {
	stats, ok := s.Repo.Stats(id)
	if !ok {
		return types.SummaryResp{}, false
	}
	progress := make(map[string]types.CategoryProgress, len(stats.Progress))
	for cat, p := range stats.Progress {
		progress[cat] = types.CategoryProgress{Learned: p.Learned, QuizBest: p.QuizBest}
	}
	return types.SummaryResp{
		SessionID: id,
		Answered:  stats.Answered,
		Correct:   stats.Correct,
		Streak:    stats.Streak,
		Progress:  progress,
	}, true
}
