package player

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Options mirror the embed parameters the web player passes through.
type Options struct {
	AutoPlay  bool
	StartTime int // seconds
	Controls  bool
}

// YouTubePlayer drives the YouTube iframe embed. It owns the state
// machine; the actual rendering/IFrame side only needs EmbedURL.
type YouTubePlayer struct {
	mu      sync.Mutex
	baseURL string
	opts    Options

	videoID string
	state   State
	muted   bool

	stateFns []func(State)
	errFns   []func(error)
}

// NewYouTubePlayer creates a player against the given embed base URL
// (e.g. the privacy-enhanced https://www.youtube-nocookie.com/embed).
func NewYouTubePlayer(baseURL string, opts Options) *YouTubePlayer {
	return &YouTubePlayer{
		baseURL: strings.TrimRight(baseURL, "/"),
		opts:    opts,
		state:   StateUnstarted,
	}
}

// Load points the player at a video. The state passes through Loading
// before settling on Ready; with AutoPlay it continues to Playing.
func (p *YouTubePlayer) Load(videoID string) error {
	if videoID == "" {
		err := ErrEmptyVideoID
		p.fireError(err)
		return err
	}

	p.mu.Lock()
	p.videoID = videoID
	p.mu.Unlock()

	p.setState(StateLoading)
	p.setState(StateReady)
	if p.opts.AutoPlay {
		p.setState(StatePlaying)
	}
	return nil
}

// Play starts playback of the loaded video.
func (p *YouTubePlayer) Play() error {
	p.mu.Lock()
	loaded := p.videoID != ""
	p.mu.Unlock()
	if !loaded {
		p.fireError(ErrNoVideo)
		return ErrNoVideo
	}
	p.setState(StatePlaying)
	return nil
}

// Pause halts playback.
func (p *YouTubePlayer) Pause() error {
	p.mu.Lock()
	loaded := p.videoID != ""
	p.mu.Unlock()
	if !loaded {
		p.fireError(ErrNoVideo)
		return ErrNoVideo
	}
	p.setState(StatePaused)
	return nil
}

// End marks playback finished. The embed side calls this when the
// provider reports the ended event.
func (p *YouTubePlayer) End() {
	p.setState(StateEnded)
}

// Mute silences playback. Mute state is independent of playback state.
func (p *YouTubePlayer) Mute() {
	p.mu.Lock()
	p.muted = true
	p.mu.Unlock()
}

// Unmute restores audio.
func (p *YouTubePlayer) Unmute() {
	p.mu.Lock()
	p.muted = false
	p.mu.Unlock()
}

// Muted reports the mute flag.
func (p *YouTubePlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// State reports the current lifecycle state.
func (p *YouTubePlayer) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// OnStateChange registers a transition callback.
func (p *YouTubePlayer) OnStateChange(fn func(State)) {
	p.mu.Lock()
	p.stateFns = append(p.stateFns, fn)
	p.mu.Unlock()
}

// OnError registers an error callback.
func (p *YouTubePlayer) OnError(fn func(error)) {
	p.mu.Lock()
	p.errFns = append(p.errFns, fn)
	p.mu.Unlock()
}

// EmbedURL renders the iframe source for the loaded video.
func (p *YouTubePlayer) EmbedURL() (string, error) {
	p.mu.Lock()
	videoID := p.videoID
	p.mu.Unlock()
	if videoID == "" {
		return "", ErrNoVideo
	}

	params := url.Values{}
	params.Set("rel", "0")
	params.Set("modestbranding", "1")
	if p.opts.AutoPlay {
		params.Set("autoplay", "1")
	} else {
		params.Set("autoplay", "0")
	}
	if !p.opts.Controls {
		params.Set("controls", "0")
	}
	if p.opts.StartTime > 0 {
		params.Set("start", fmt.Sprintf("%d", p.opts.StartTime))
	}

	return fmt.Sprintf("%s/%s?%s", p.baseURL, url.PathEscape(videoID), params.Encode()), nil
}

func (p *YouTubePlayer) setState(s State) {
	p.mu.Lock()
	p.state = s
	fns := make([]func(State), len(p.stateFns))
	copy(fns, p.stateFns)
	p.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

func (p *YouTubePlayer) fireError(err error) {
	p.mu.Lock()
	fns := make([]func(error), len(p.errFns))
	copy(fns, p.errFns)
	p.mu.Unlock()

	for _, fn := range fns {
		fn(err)
	}
}

// EmbedURL builds a plain embed link without instantiating a player.
// Used where only the URL is needed, e.g. favorite-video responses.
func EmbedURL(baseURL, videoID string) string {
	if videoID == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(videoID)
}
