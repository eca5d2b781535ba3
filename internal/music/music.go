// Package music holds the background-music toggle. The server keeps no
// player; it remembers the visitor's play/pause choice in a cookie and
// renders the matching button. Every page load starts paused.
package music

import (
	"net/http"
	"strconv"
)

const (
	CookieName = "music_playing"
	// CookieMaxAge keeps the choice for a year, in seconds.
	CookieMaxAge = 365 * 24 * 3600
)

// Track describes the looping background track.
type Track struct {
	Src     string
	Loop    bool
	Volume  float64
	Preload string
}

func DefaultTrack(src string) Track {
	return Track{Src: src, Loop: true, Volume: 0.7, Preload: "auto"}
}

type State struct {
	Playing bool
}

// FromRequest reads the saved state. Missing or malformed cookies mean paused.
func FromRequest(r *http.Request) State {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return State{}
	}
	playing, err := strconv.ParseBool(c.Value)
	if err != nil {
		return State{}
	}
	return State{Playing: playing}
}

// Toggle flips the play state.
func (s State) Toggle() State {
	return State{Playing: !s.Playing}
}

// Value is the cookie value for the state.
func (s State) Value() string {
	return strconv.FormatBool(s.Playing)
}

func (s State) AriaLabel() string {
	if s.Playing {
		return "Pause music"
	}
	return "Play music"
}

func (s State) Tooltip() string {
	if s.Playing {
		return "Pause background music"
	}
	return "Play background music"
}

func (s State) Icon() string {
	if s.Playing {
		return "volume-2"
	}
	return "music"
}
