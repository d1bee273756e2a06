package tts

import (
	"unicode/utf8"

	"github.com/gujaratishikho/backend/pkg/types"
)

const (
	// LanguageCode is the only locale this service synthesizes. Every
	// upstream request carries it, whatever the caller sent.
	LanguageCode = "gu-IN"

	DefaultVoice = "gu-IN-Standard-A"

	DefaultRate = 0.8
	MinRate     = 0.5
	MaxRate     = 1.2

	MaxTextLength = 200
)

// AllowedVoices is the fixed gu-IN allow-list: Standard and WaveNet tiers,
// female and male voices each.
var AllowedVoices = []string{
	"gu-IN-Standard-A",
	"gu-IN-Standard-B",
	"gu-IN-Wavenet-A",
	"gu-IN-Wavenet-B",
}

func VoiceAllowed(name string) bool {
	for _, v := range AllowedVoices {
		if v == name {
			return true
		}
	}
	return false
}

// rule is one validation step. Rules run in a fixed order and the first
// failure wins; the method check happens earlier, at the router.
type rule struct {
	name  string
	check func(req types.SynthesizeRequest) *Error
}

func (g *Gateway) rules() []rule {
	return []rule{
		{name: "credential", check: func(types.SynthesizeRequest) *Error {
			if g.apiKey == "" {
				return ErrMisconfigured()
			}
			return nil
		}},
		{name: "voice", check: func(req types.SynthesizeRequest) *Error {
			if name := req.Voice.Name; name != "" && !VoiceAllowed(name) {
				return errInvalidVoice(name)
			}
			return nil
		}},
		{name: "text-length", check: func(req types.SynthesizeRequest) *Error {
			if utf8.RuneCountInString(req.Input.Text) > MaxTextLength {
				return errTextTooLong()
			}
			return nil
		}},
	}
}

func (g *Gateway) Validate(req types.SynthesizeRequest) *Error {
	for _, r := range g.rules() {
		if err := r.check(req); err != nil {
			return err
		}
	}
	return nil
}

// ClampRate maps an absent (zero) rate to the default and forces everything
// else into [MinRate, MaxRate]. Out-of-range values are clamped, not rejected.
func ClampRate(rate float64) float64 {
	if rate == 0 {
		rate = DefaultRate
	}
	if rate < MinRate {
		return MinRate
	}
	if rate > MaxRate {
		return MaxRate
	}
	return rate
}
