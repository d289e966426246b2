//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_ReadKeys(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	term := New(r, &bytes.Buffer{})
	keys := make(chan KeyEvent, 4)
	done := make(chan error, 1)
	go func() { done <- term.ReadKeys(context.Background(), keys) }()

	_, err = w.Write([]byte(" q"))
	require.NoError(t, err)

	assert.Equal(t, KeyEvent{Key: KeyRune, Rune: ' '}, <-keys)
	assert.Equal(t, KeyEvent{Key: KeyRune, Rune: 'q'}, <-keys)

	require.NoError(t, w.Close())
	select {
	case err := <-done:
		assert.NoError(t, err, "EOF ends the reader cleanly")
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not stop at EOF")
	}
}

func TestTerminal_ReadKeysStopsOnCancel(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	term := New(r, &bytes.Buffer{})
	done := make(chan error, 1)
	go func() { done <- term.ReadKeys(ctx, make(chan KeyEvent)) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not stop on cancel")
	}
}
