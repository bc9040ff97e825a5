// Package audio plays synthesized pronunciation clips through a system
// player binary. Playback is a scoped resource: one clip at a time,
// overlapping requests are rejected rather than queued or mixed.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// ErrBusy is returned when a clip is already playing.
var ErrBusy = errors.New("audio already playing")

// playerCommands lists candidate system players in preference order.
// The first one found on PATH wins.
var playerCommands = [][]string{
	{"afplay"},
	{"paplay"},
	{"aplay", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"mpv", "--really-quiet"},
}

// Player owns the single is-playing flag and the system player binary.
type Player struct {
	mu      sync.Mutex
	playing bool

	cmd []string // resolved player command, nil when none found
}

// NewPlayer locates a system player. A machine without one still gets a
// working Player: Play degrades to a silent no-op.
func NewPlayer() *Player {
	p := &Player{}
	for _, candidate := range playerCommands {
		if path, err := exec.LookPath(candidate[0]); err == nil {
			p.cmd = append([]string{path}, candidate[1:]...)
			break
		}
	}
	return p
}

// Available reports whether a system player was found.
func (p *Player) Available() bool {
	return p.cmd != nil
}

// Playing reports whether a clip is currently playing.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Play blocks while the clip plays and resets the busy flag when the
// player exits, on success or failure alike. An empty clip or a missing
// player returns nil immediately: silence, not an error. A second Play
// while one is running returns ErrBusy.
func (p *Player) Play(ctx context.Context, pcm []byte, sampleRate int) error {
	if len(pcm) == 0 || p.cmd == nil {
		return nil
	}

	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return ErrBusy
	}
	p.playing = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.playing = false
		p.mu.Unlock()
	}()

	f, err := os.CreateTemp("", "topikpal-*.wav")
	if err != nil {
		return fmt.Errorf("create clip file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(EncodeWAV(pcm, sampleRate)); err != nil {
		f.Close()
		return fmt.Errorf("write clip file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close clip file: %w", err)
	}

	args := append(append([]string{}, p.cmd[1:]...), path)
	cmd := exec.CommandContext(ctx, p.cmd[0], args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play %s: %w", filepath.Base(path), err)
	}
	return nil
}
