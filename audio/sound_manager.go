package audio

import (
	"math"
	"time"

	"snake-pathfinder/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone is one step of a cue
type tone struct {
	freq     float64
	duration time.Duration
}

var (
	eatCue      = []tone{{880, 60 * time.Millisecond}}
	levelUpCue  = []tone{{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 120 * time.Millisecond}}
	gameOverCue = []tone{{392, 150 * time.Millisecond}, {261.63, 150 * time.Millisecond}, {130.81, 300 * time.Millisecond}}
)

// SoundManager plays short sine cues for game events. Every method is a
// no-op until Initialize succeeds, so the game runs the same without audio.
type SoundManager struct {
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Close() {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) Eat()      { sm.play(eatCue) }
func (sm *SoundManager) LevelUp()  { sm.play(levelUpCue) }
func (sm *SoundManager) GameOver() { sm.play(gameOverCue) }

func (sm *SoundManager) play(cue []tone) {
	if !sm.initialized {
		return
	}
	s, err := buildCue(cue, sm.volume)
	if err != nil {
		logger.Log.Warnw("sound cue failed", "error", err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// buildCue chains the tones of a cue and scales them to volume (0..1]
func buildCue(cue []tone, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(cue))
	for _, t := range cue {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), sine))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
