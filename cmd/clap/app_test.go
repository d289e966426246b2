package main

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clap "github.com/grindlemire/go-clap"
	"github.com/grindlemire/go-clap/internal/term"
)

type fakeScreen struct {
	mu     sync.Mutex
	frames []string
}

func (s *fakeScreen) Size() (int, int) { return 60, 20 }

func (s *fakeScreen) Draw(frame string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, frame)
	return nil
}

func (s *fakeScreen) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return ""
	}
	return s.frames[len(s.frames)-1]
}

func TestParseRunFlags(t *testing.T) {
	type tc struct {
		args    []string
		want    config
		wantErr bool
	}

	tests := map[string]tc{
		"defaults": {
			want: config{pattern: patternProps, max: clap.DefaultMax, fps: 60},
		},
		"everything set": {
			args: []string{"-pattern", "context", "-max", "10", "-count", "2", "-total", "7", "-clicked", "-fps", "30"},
			want: config{pattern: patternContext, max: 10, count: 2, total: 7, clicked: true, fps: 30},
		},
		"unknown pattern": {
			args:    []string{"-pattern", "hooks"},
			wantErr: true,
		},
		"stray argument": {
			args:    []string{"extra"},
			wantErr: true,
		},
		"unknown flag": {
			args:    []string{"-nope"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseRunFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewApp_RejectsBadConfig(t *testing.T) {
	type tc struct {
		cfg config
	}

	tests := map[string]tc{
		"zero fps":          {cfg: config{pattern: patternProps, max: 50}},
		"count above max":   {cfg: config{pattern: patternProps, max: 5, count: 6, total: 6, fps: 60}},
		"total below count": {cfg: config{pattern: patternProps, max: 50, count: 3, total: 1, fps: 60}},
		"fps too high":      {cfg: config{pattern: patternProps, max: 50, fps: 1000}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newApp(tt.cfg, &fakeScreen{})
			assert.Error(t, err)
		})
	}
}

func TestApp_HandleKey(t *testing.T) {
	for _, pattern := range []string{patternProps, patternContext} {
		t.Run(pattern, func(t *testing.T) {
			cfg := config{pattern: pattern, max: 50, total: 1000, clicked: true, fps: 240}
			a, err := newApp(cfg, &fakeScreen{})
			require.NoError(t, err)
			defer a.close()

			require.True(t, a.anchors.Complete())
			require.True(t, a.animator.Built())

			a.handleKey(term.KeyEvent{Key: term.KeyRune, Rune: ' '})
			a.handleKey(term.KeyEvent{Key: term.KeyEnter})
			assert.Equal(t, clap.State{Count: 2, CountTotal: 1002, IsClicked: true}, a.ctl.State())

			a.handleKey(term.KeyEvent{Key: term.KeyRune, Rune: 'r'})
			assert.Equal(t, clap.State{CountTotal: 1000, IsClicked: true}, a.ctl.State())

			a.handleKey(term.KeyEvent{Key: term.KeyRune, Rune: 'x'})
			assert.Equal(t, clap.State{CountTotal: 1000, IsClicked: true}, a.ctl.State())

			a.handleKey(term.KeyEvent{Key: term.KeyCtrlC})
			select {
			case <-a.stopCh:
			default:
				t.Fatal("ctrl+c should stop the app")
			}
		})
	}
}

func TestApp_RenderShowsState(t *testing.T) {
	scr := &fakeScreen{}
	a, err := newApp(config{pattern: patternProps, max: 50, fps: 60}, scr)
	require.NoError(t, err)
	defer a.close()

	require.NoError(t, a.render())
	frame := scr.last()
	assert.Contains(t, frame, `{"count":0,"countTotal":0,"isClicked":false}`)
	assert.NotContains(t, frame, "You have clapped")

	a.widget.Click()
	require.NoError(t, a.render())
	frame = scr.last()
	assert.Contains(t, frame, `{"count":1,"countTotal":1,"isClicked":true}`)
	assert.Contains(t, frame, "You have clapped 1 times")
}

func TestApp_Run(t *testing.T) {
	scr := &fakeScreen{}
	a, err := newApp(config{pattern: patternProps, max: 50, fps: 240}, scr)
	require.NoError(t, err)

	keys := make(chan term.KeyEvent)
	done := make(chan error, 1)
	go func() { done <- a.run(context.Background(), keys) }()

	keys <- term.KeyEvent{Key: term.KeyRune, Rune: ' '}

	assert.Eventually(t, func() bool {
		return strings.Contains(scr.last(), "You have clapped 1 times")
	}, 2*time.Second, 5*time.Millisecond, "the loop redraws after a clap")

	keys <- term.KeyEvent{Key: term.KeyRune, Rune: 'q'}
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after q")
	}
	assert.Equal(t, 1, a.ctl.State().Count)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	a, err := newApp(config{pattern: patternContext, max: 50, fps: 60}, &fakeScreen{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.run(ctx, nil) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestApp_ReplayFollowsCount(t *testing.T) {
	a, err := newApp(config{pattern: patternProps, max: 1, fps: 60}, &fakeScreen{})
	require.NoError(t, err)
	defer a.close()

	tl := a.animator.Timeline()
	require.NotNil(t, tl)
	assert.False(t, tl.Running(), "mounting does not animate")

	a.widget.Click()
	assert.True(t, tl.Running(), "a counted clap replays")
	tl.Stop()

	a.widget.Click()
	assert.False(t, tl.Running(), "a clap refused at the maximum does not")

	a.reset.Click()
	assert.True(t, tl.Running(), "reset changes the count")
}
