// Package player abstracts the external video-embed provider so nothing
// above it depends on a specific player's embed mechanism.
package player

import "errors"

// State is the embed player lifecycle state.
type State int

const (
	StateUnstarted State = iota
	StateLoading
	StateReady
	StatePlaying
	StatePaused
	StateEnded
)

var stateNames = map[State]string{
	StateUnstarted: "unstarted",
	StateLoading:   "loading",
	StateReady:     "ready",
	StatePlaying:   "playing",
	StatePaused:    "paused",
	StateEnded:     "ended",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Player is the provider-neutral embed surface. State-change and error
// callbacks fire synchronously on the goroutine driving the transition.
type Player interface {
	Load(videoID string) error
	Play() error
	Pause() error
	Mute()
	Unmute()
	Muted() bool
	State() State
	OnStateChange(fn func(State))
	OnError(fn func(error))
}

var (
	// ErrNoVideo means an operation needs a loaded video first.
	ErrNoVideo = errors.New("no video loaded")
	// ErrEmptyVideoID rejects Load with a blank identifier.
	ErrEmptyVideoID = errors.New("video id is empty")
)
