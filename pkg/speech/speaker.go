package speech

import (
	"context"
	"log"

	"github.com/gujaratishikho/backend/internal/core/tts"
)

// Speaker is the app-facing entry point: one cache lookup, at most one
// network call, playback as a side effect. Each Speaker owns its cache, so
// sessions and tests can construct and discard them independently.
type Speaker struct {
	Client *Client
	Cache  *Cache
	Player Player

	DefaultVoice string
	DefaultRate  float64
}

// NewSpeaker builds a Speaker with a fresh cache. A nil player falls back to
// the platform default.
func NewSpeaker(client *Client, player Player) *Speaker {
	if player == nil {
		player = DefaultPlayer()
	}
	return &Speaker{
		Client:       client,
		Cache:        NewCache(),
		Player:       player,
		DefaultVoice: tts.DefaultVoice,
		DefaultRate:  tts.DefaultRate,
	}
}

// Speak pronounces text, fetching and caching the audio on first use. An
// empty voice or zero rate falls back to the speaker defaults. Failures are
// never cached, so a retry with the same inputs hits the network again.
func (s *Speaker) Speak(ctx context.Context, text, voice string, rate float64) error {
	if voice == "" {
		voice = s.DefaultVoice
	}
	if rate == 0 {
		rate = s.DefaultRate
	}

	key := Key(text, voice, rate)
	if audio, ok := s.Cache.Get(key); ok {
		s.play(audio)
		return nil
	}

	audio, err := s.Client.Synthesize(ctx, text, voice, rate)
	if err != nil {
		return err
	}
	s.Cache.Put(key, audio)
	s.play(audio)
	return nil
}

// play is best-effort: a device-level failure does not undo a successful
// fetch, the audio is cached either way.
func (s *Speaker) play(audio []byte) {
	if s.Player == nil {
		return
	}
	if err := s.Player.Play(audio); err != nil {
		log.Printf("playback: %v", err)
	}
}
