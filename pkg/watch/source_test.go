package watch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strata/pkg/core"
)

func TestNewSource(t *testing.T) {
	in := make(chan core.Event, 1)
	source := NewSource(in)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, source.Start(ctx))

	in <- core.Event{Type: core.EventModify, Path: "doc.md", Timestamp: time.Now().Unix()}

	select {
	case e := <-source.Events():
		assert.Equal(t, "MODIFY doc.md", e.String())
	case <-ctx.Done():
		t.Fatal("Bridged event never arrived")
	}

	// Closing the input closes the bridged stream.
	close(in)
	select {
	case _, open := <-source.Events():
		assert.False(t, open)
	case <-ctx.Done():
		t.Fatal("Stream did not close")
	}
}
