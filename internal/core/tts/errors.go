package tts

import (
	"fmt"
	"net/http"
)

// Kind classifies a synthesis failure. Each kind maps to exactly one HTTP
// status and a caller-safe message.
type Kind int

const (
	KindMethodNotAllowed Kind = iota
	KindMisconfigured
	KindInvalidVoice
	KindTextTooLong
	KindUpstreamError
	KindUpstreamUnavailable
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func ErrMethodNotAllowed() *Error {
	return &Error{Kind: KindMethodNotAllowed, Status: http.StatusMethodNotAllowed, Message: "Method not allowed"}
}

func ErrMisconfigured() *Error {
	return &Error{
		Kind:    KindMisconfigured,
		Status:  http.StatusInternalServerError,
		Message: "TTS API key not configured. Set GOOGLE_TTS_API_KEY in the server environment.",
	}
}

func errInvalidVoice(name string) *Error {
	return &Error{
		Kind:    KindInvalidVoice,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Voice %q not allowed. Use Standard or WaveNet voices.", name),
	}
}

func errTextTooLong() *Error {
	return &Error{
		Kind:    KindTextTooLong,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Text too long. Maximum %d characters.", MaxTextLength),
	}
}

func errUpstream(status int, msg string) *Error {
	return &Error{Kind: KindUpstreamError, Status: status, Message: msg}
}

func errUnavailable(msg string) *Error {
	return &Error{
		Kind:    KindUpstreamUnavailable,
		Status:  http.StatusInternalServerError,
		Message: "Server error: " + msg,
	}
}
