// Package speech adapts captured audio into chat input. Repeat captures of
// the same clip are recognized by fingerprint and dropped.
package speech

import (
	"context"
	"hash/fnv"
	"log/slog"

	"github.com/hrygo/famichat/plugin/ai"
	"github.com/hrygo/famichat/server/session"
)

// Adapter forwards audio to the speech-to-text endpoint.
type Adapter struct {
	stt ai.SpeechToText
}

// NewAdapter creates a transcriber adapter.
func NewAdapter(stt ai.SpeechToText) *Adapter {
	return &Adapter{stt: stt}
}

// Fingerprint computes the content fingerprint of an audio clip.
func Fingerprint(audio []byte) uint64 {
	h := fnv.New64a()
	h.Write(audio)
	return h.Sum64()
}

// Transcribe converts the audio into text. A capture whose fingerprint
// equals the session's last observed one is a duplicate: it yields
// ok=false and no endpoint call. The returned text is treated as if the
// user typed it.
func (a *Adapter) Transcribe(ctx context.Context, state *session.State, audio []byte) (string, bool, error) {
	if len(audio) == 0 {
		return "", false, nil
	}

	fingerprint := Fingerprint(audio)
	if state.SeenAudio(fingerprint) {
		slog.Debug("duplicate audio capture dropped", "fingerprint", fingerprint)
		return "", false, nil
	}

	text, err := a.stt.Transcribe(ctx, audio)
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}
