package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func streamLen(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestCuesPlaySafelyWithoutSpeaker(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cues panicked without initialization: %v", r)
		}
	}()
	sm := NewSoundManager(0.5)
	sm.Eat()
	sm.LevelUp()
	sm.GameOver()
	sm.Close()
}

func TestBuildCueLength(t *testing.T) {
	s, err := buildCue(levelUpCue, 0.5)
	if err != nil {
		t.Fatalf("buildCue failed: %v", err)
	}
	want := 0
	for _, tn := range levelUpCue {
		want += sampleRate.N(tn.duration)
	}
	if got := streamLen(s); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

func TestSilentVolume(t *testing.T) {
	s, err := buildCue([]tone{{440, 10 * time.Millisecond}}, 0)
	if err != nil {
		t.Fatalf("buildCue failed: %v", err)
	}
	buf := make([][2]float64, 64)
	s.Stream(buf)
	for i, sample := range buf {
		if sample[0] != 0 || sample[1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, sample)
		}
	}
}

func TestBuildCueRejectsNyquist(t *testing.T) {
	if _, err := buildCue([]tone{{float64(sampleRate), time.Millisecond}}, 1); err == nil {
		t.Error("Expected an error for a tone at the sample rate")
	}
}
