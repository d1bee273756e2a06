package memory

import (
	"sync"
	"time"
)

type CategoryProgress struct {
	Learned  int
	QuizBest int
}

// LearnerSession tracks one client session: the chosen voice, the speaking
// rate and quiz progress. Nothing is persisted; the session dies with the
// process. The counters are guarded by mu because the practice socket writes
// them while summary requests read.
type LearnerSession struct {
	ID        string
	CreatedAt time.Time
	Voice     string
	Rate      float64

	mu       sync.Mutex
	Answered int64
	Correct  int64
	Streak   int64
	Progress map[string]*CategoryProgress
}

// SessionStats is a consistent read of one session's counters.
type SessionStats struct {
	Answered int64
	Correct  int64
	Streak   int64
	Progress map[string]CategoryProgress
}

type SessionRepo struct {
	m sync.Map
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{}
}

func (r *SessionRepo) Save(s *LearnerSession) {
	r.m.Store(s.ID, s)
}

func (r *SessionRepo) Get(id string) (*LearnerSession, bool) {
	v, ok := r.m.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*LearnerSession), true
}

// Stats copies the counters and progress out under the session lock.
func (r *SessionRepo) Stats(id string) (SessionStats, bool) {
	s, ok := r.Get(id)
	if !ok {
		return SessionStats{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := SessionStats{
		Answered: s.Answered,
		Correct:  s.Correct,
		Streak:   s.Streak,
		Progress: make(map[string]CategoryProgress, len(s.Progress)),
	}
	for cat, p := range s.Progress {
		out.Progress[cat] = *p
	}
	return out, true
}

// RecordAnswer bumps the answered counter and keeps the streak: one more on
// a correct answer, back to zero on a wrong one.
func (r *SessionRepo) RecordAnswer(id string, correct bool) {
	s, ok := r.Get(id)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Answered++
	if correct {
		s.Correct++
		s.Streak++
	} else {
		s.Streak = 0
	}
}

// RecordQuizScore keeps the best score per category.
func (r *SessionRepo) RecordQuizScore(id, category string, score int) {
	s, ok := r.Get(id)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := progress(s, category)
	if score > p.QuizBest {
		p.QuizBest = score
	}
}

func (r *SessionRepo) MarkLearned(id, category string) {
	s, ok := r.Get(id)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	progress(s, category).Learned++
}

// progress is called with s.mu held.
func progress(s *LearnerSession, category string) *CategoryProgress {
	if s.Progress == nil {
		s.Progress = map[string]*CategoryProgress{}
	}
	p, ok := s.Progress[category]
	if !ok {
		p = &CategoryProgress{}
		s.Progress[category] = p
	}
	return p
}
