// Package quiz builds multiple-choice rounds from the word catalog.
package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gujaratishikho/backend/internal/core/content"
)

const (
	RoundSize   = 5
	optionCount = 4
)

type Engine struct {
	rnd *rand.Rand
}

func New() *Engine {
	return NewSeeded(time.Now().UnixNano())
}

func NewSeeded(seed int64) *Engine {
	return &Engine{rnd: rand.New(rand.NewSource(seed))}
}

// Question shows a Gujarati word and asks for its English meaning. The
// answer stays server-side; clients only ever see the options.
type Question struct {
	Category string   `json:"category"`
	Gujarati string   `json:"gujarati"`
	Roman    string   `json:"roman"`
	Options  []string `json:"options"`
	Answer   string   `json:"-"`
}

func (q Question) Correct(answer string) bool { return answer == q.Answer }

// Round draws up to RoundSize questions from one category. Each question
// hides the correct gloss among three decoys from the same category.
func (e *Engine) Round(categoryID string) ([]Question, error) {
	cat, ok := content.CategoryByID(categoryID)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", categoryID)
	}

	words := make([]content.Word, len(cat.Words))
	copy(words, cat.Words)
	e.rnd.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })

	n := RoundSize
	if n > len(words) {
		n = len(words)
	}

	questions := make([]Question, 0, n)
	for _, w := range words[:n] {
		questions = append(questions, Question{
			Category: cat.ID,
			Gujarati: w.Gujarati,
			Roman:    w.Roman,
			Options:  e.options(cat.Words, w),
			Answer:   w.English,
		})
	}
	return questions, nil
}

func (e *Engine) options(pool []content.Word, correct content.Word) []string {
	decoys := make([]string, 0, len(pool)-1)
	for _, w := range pool {
		if w.English != correct.English {
			decoys = append(decoys, w.English)
		}
	}
	e.rnd.Shuffle(len(decoys), func(i, j int) { decoys[i], decoys[j] = decoys[j], decoys[i] })
	if len(decoys) > optionCount-1 {
		decoys = decoys[:optionCount-1]
	}
	opts := append(decoys, correct.English)
	e.rnd.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}
