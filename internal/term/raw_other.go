//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package term

import (
	"time"

	"github.com/pkg/errors"
)

var errUnsupported = errors.New("term: raw terminal input is not supported on this platform")

type rawModeState struct{}

func enableRawMode(int) (*rawModeState, error) { return nil, errUnsupported }

func disableRawMode(*rawModeState) error { return nil }

func terminalSize(int) (int, int, error) { return 0, 0, errUnsupported }

func selectWithTimeout(int, time.Duration) (bool, error) { return false, errUnsupported }
