package speech

import (
	"os"
	"os/exec"
	"runtime"
)

// Player turns synthesized MP3 bytes into sound.
type Player interface {
	Play(audio []byte) error
}

// CommandPlayer writes the audio to a temp file and hands it to a local
// playback tool.
type CommandPlayer struct {
	Command string
	Args    []string
}

func (p *CommandPlayer) Play(audio []byte) error {
	f, err := os.CreateTemp("", "speech-*.mp3")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(audio); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	args := append(append([]string{}, p.Args...), f.Name())
	return exec.Command(p.Command, args...).Run()
}

// DefaultPlayer picks a playback tool for the current platform.
func DefaultPlayer() Player {
	if runtime.GOOS == "darwin" {
		return &CommandPlayer{Command: "afplay"}
	}
	return &CommandPlayer{Command: "mpg123", Args: []string{"-q"}}
}
