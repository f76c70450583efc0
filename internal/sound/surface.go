// Package sound maps symbolic sound names to in-memory clips and plays them
// through the system speaker. Missing or broken clips are silently skipped.
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Clip names used by the shooter.
const (
	Shoot     = "shoot"
	Explosion = "explosion"
	PlayerHit = "player_hit"
)

// Names lists every clip the shooter tries to load.
var Names = []string{Shoot, Explosion, PlayerHit}

const (
	// SampleRate is the speaker rate; clips at other rates are resampled on load.
	SampleRate = beep.SampleRate(44100)

	// bufferLatency is the speaker buffer length.
	bufferLatency = 50 * time.Millisecond

	// resampleQuality is passed to beep.Resample (1-64).
	resampleQuality = 4
)

// speakerOnce guards speaker.Init; beep allows a single speaker per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// Surface plays named clips. A nil *Surface is a valid silent surface.
type Surface struct {
	clips   map[string]*beep.Buffer
	output  func(beep.Streamer)
	speaker bool
}

// Open initializes the speaker and loads every clip in Names from dir
// (<dir>/<name>.wav). When the speaker is unavailable the surface is silent.
func Open(dir string, logger *log.Logger) *Surface {
	if logger == nil {
		logger = log.Default()
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(bufferLatency))
	})
	if speakerErr != nil {
		logger.Warn("audio unavailable, game will be silent", "error", speakerErr)
		return &Surface{clips: map[string]*beep.Buffer{}}
	}

	s := Load(dir, SampleRate, func(s beep.Streamer) { speaker.Play(s) }, logger)
	s.speaker = true
	return s
}

// Load reads clips from dir, converting them to rate, and plays them through
// output. Each missing or undecodable clip logs one warning and stays absent.
func Load(dir string, rate beep.SampleRate, output func(beep.Streamer), logger *log.Logger) *Surface {
	if logger == nil {
		logger = log.Default()
	}

	s := &Surface{
		clips:  make(map[string]*beep.Buffer, len(Names)),
		output: output,
	}

	for _, name := range Names {
		path := filepath.Join(dir, name+".wav")
		buf, err := loadClip(path, rate)
		if err != nil {
			logger.Warn("sound clip unavailable", "clip", name, "error", err)
			continue
		}
		s.clips[name] = buf
	}

	return s
}

// loadClip decodes a WAV file fully into memory at the given rate.
func loadClip(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sound: cannot open %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sound: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	format.SampleRate = rate
	buf := beep.NewBuffer(format)
	buf.Append(src)

	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("sound: cannot read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("sound: %s is empty", path)
	}

	return buf, nil
}

// Has reports whether the named clip is loaded.
func (s *Surface) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.clips[name]
	return ok
}

// Play starts the named clip. Unknown or missing clips are a no-op.
func (s *Surface) Play(name string) {
	if s == nil || s.output == nil {
		return
	}
	buf, ok := s.clips[name]
	if !ok {
		return
	}
	s.output(buf.Streamer(0, buf.Len()))
}

// Close stops playback and releases the speaker.
func (s *Surface) Close() {
	if s == nil || !s.speaker {
		return
	}
	speaker.Clear()
}

// Nop is a sound surface that never plays anything.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}
