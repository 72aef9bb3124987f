package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Spinner is a terminal progress indicator. A disabled spinner (for
// non-interactive sessions) turns Start and Stop into no-ops.
type Spinner struct {
	mu         sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	enabled    bool
	stopChan   chan struct{}
}

// NewSpinner instantiates a new progress indicator writing to stderr.
func NewSpinner(msg string, d time.Duration, enabled bool) *Spinner {
	return &Spinner{
		delay:    d,
		writer:   os.Stderr,
		message:  msg,
		enabled:  enabled,
		stopChan: make(chan struct{}, 1),
	}
}

// Start starts the progress indicator.
func (s *Spinner) Start() {
	if !s.enabled {
		return
	}

	go func() {
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-s.stopChan:
					return
				default:
					s.mu.Lock()
					output := fmt.Sprintf("\r%s%s %c%s", s.message, SuccessColor, r, DefaultColor)
					fmt.Fprint(s.writer, output)
					s.lastOutput = output
					s.mu.Unlock()

					time.Sleep(s.delay)
				}
			}
		}
	}()
}

// Stop stops the progress indicator and clears the last printed line.
func (s *Spinner) Stop() {
	if !s.enabled {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := utf8.RuneCountInString(s.lastOutput)
	fmt.Fprint(s.writer, "\r"+strings.Repeat(" ", n)+"\r")
	s.lastOutput = ""

	s.stopChan <- struct{}{}
}
