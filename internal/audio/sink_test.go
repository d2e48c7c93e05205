package audio

import (
	"context"
	"testing"

	"lingualearn/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestProbe(t *testing.T) {
	t.Run("unknown preferred player yields an unavailable sink", func(t *testing.T) {
		sink := Probe("definitely-not-a-player-binary")
		assert.False(t, sink.Available())
		assert.Equal(t, "unavailable", sink.Name())
	})

	t.Run("unavailable sink refuses to play", func(t *testing.T) {
		sink := Probe("definitely-not-a-player-binary")
		err := sink.Play(context.Background(), []byte("mp3"))
		assert.ErrorIs(t, err, model.ErrUnavailable)
	})
}
