package audio

import "context"

// Synthesizer produces raw 16-bit mono PCM for a piece of text.
// Satisfied by the llm speech client.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Pronouncer ties a Synthesizer to a Player so screens can speak a
// piece of Korean text with one call.
type Pronouncer struct {
	synth      Synthesizer
	player     *Player
	sampleRate int
}

// NewPronouncer creates a Pronouncer. A nil synthesizer yields a
// Pronouncer whose Pronounce is a silent no-op, for machines without a
// TTS-capable API key.
func NewPronouncer(synth Synthesizer, player *Player, sampleRate int) *Pronouncer {
	return &Pronouncer{synth: synth, player: player, sampleRate: sampleRate}
}

// Available reports whether pronunciation can actually produce sound.
func (p *Pronouncer) Available() bool {
	return p != nil && p.synth != nil && p.player != nil && p.player.Available()
}

// Playing reports whether a clip is currently playing.
func (p *Pronouncer) Playing() bool {
	return p != nil && p.player != nil && p.player.Playing()
}

// Pronounce synthesizes text and plays it, blocking until playback
// ends. Returns ErrBusy while another clip is playing.
func (p *Pronouncer) Pronounce(ctx context.Context, text string) error {
	if !p.Available() || text == "" {
		return nil
	}
	if p.player.Playing() {
		return ErrBusy
	}
	pcm, err := p.synth.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	return p.player.Play(ctx, pcm, p.sampleRate)
}
