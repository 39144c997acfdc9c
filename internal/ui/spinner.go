package ui

import (
	"fmt"
	"time"
)

// Spinner animates a loading indicator on stdout while a request is in
// flight. Commands use it outside full-TUI contexts.
type Spinner struct {
	frames []string
	msg    string
	stop   chan struct{}
	done   chan struct{}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a new spinner with the given message.
func NewSpinner(msg string) *Spinner {
	return &Spinner{
		frames: spinnerFrames,
		msg:    msg,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start begins the spinner animation in a goroutine.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		i := 0
		for {
			select {
			case <-s.stop:
				fmt.Printf("\r%-70s\r", "")
				return
			default:
				frame := StyleSuccess.Render(s.frames[i%len(s.frames)])
				fmt.Printf("\r%s  %s", frame, s.msg)
				time.Sleep(80 * time.Millisecond)
				i++
			}
		}
	}()
}

// Stop halts the spinner and waits for the line to be cleared.
func (s *Spinner) Stop() {
	close(s.stop)
	<-s.done
}
