// Package audio models local audio playback as a capability selected
// once at startup and injected where needed, instead of probed global
// state.
package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"lingualearn/internal/model"
)

// Sink plays a chunk of encoded audio. Play blocks until playback
// finishes or the context is cancelled.
type Sink interface {
	Play(ctx context.Context, data []byte) error
	Available() bool
	Name() string
}

// playerCandidates are tried in order when no player is configured.
// Each must accept an MP3 file path as its final argument.
var playerCandidates = []struct {
	binary string
	args   []string
}{
	{binary: "mpg123", args: []string{"-q"}},
	{binary: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{binary: "afplay", args: nil},
	{binary: "mpv", args: []string{"--no-video", "--really-quiet"}},
}

// Probe selects a playback mechanism. A non-empty preferred binary is
// tried first; otherwise the known players are tried in order. When
// nothing is found the returned sink reports unavailable and every Play
// fails with model.ErrUnavailable.
func Probe(preferred string) Sink {
	if preferred != "" {
		if path, err := exec.LookPath(preferred); err == nil {
			return &processSink{name: preferred, path: path}
		}
		return &unavailableSink{}
	}
	for _, candidate := range playerCandidates {
		if path, err := exec.LookPath(candidate.binary); err == nil {
			return &processSink{name: candidate.binary, path: path, args: candidate.args}
		}
	}
	return &unavailableSink{}
}

// processSink shells out to an external player binary.
type processSink struct {
	name string
	path string
	args []string
}

func (s *processSink) Play(ctx context.Context, data []byte) error {
	tmp, err := os.CreateTemp("", "lingualearn-*.mp3")
	if err != nil {
		return fmt.Errorf("audio: failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("audio: failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("audio: failed to close temp file: %w", err)
	}

	args := append(append([]string(nil), s.args...), tmp.Name())
	cmd := exec.CommandContext(ctx, s.path, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("audio: player %s failed: %w", s.name, err)
	}
	return nil
}

func (s *processSink) Available() bool { return true }
func (s *processSink) Name() string    { return s.name }

// unavailableSink is the fallback when no playback mechanism exists.
type unavailableSink struct{}

func (s *unavailableSink) Play(ctx context.Context, data []byte) error {
	return model.ErrUnavailable
}

func (s *unavailableSink) Available() bool { return false }
func (s *unavailableSink) Name() string    { return "unavailable" }
