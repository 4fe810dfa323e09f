// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types the screensaver cares about
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowClose
	EventKeyDown
)

// Event represents a processed input event.
type Event struct {
	Type     EventType
	Key      sdl.Scancode
	WindowID uint32
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				i.events = append(i.events, Event{
					Type:     EventWindowClose,
					WindowID: e.WindowID,
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					quit = true
				}
			}
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
