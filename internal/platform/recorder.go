// Package platform holds pieces shared by the terminal and GUI front-ends.
package platform

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

// Recorder follows a game tick by tick and saves every finished session once.
// A nil store keeps the best score in memory only.
type Recorder struct {
	store    *storage.Store
	logger   *log.Logger
	gameID   string
	player   string
	tickRate int

	prev      core.GameState
	playTicks int
	saved     bool
	best      int
}

// NewRecorder creates a recorder and loads the stored best score.
func NewRecorder(store *storage.Store, logger *log.Logger, gameID, player string, tickRate int) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}

	r := &Recorder{
		store:    store,
		logger:   logger,
		gameID:   gameID,
		player:   player,
		tickRate: tickRate,
	}

	if store != nil {
		best, err := store.HighScore(gameID)
		if err != nil {
			logger.Warn("could not read high score", "error", err)
		}
		r.best = best
	}

	return r
}

// Observe takes the state after a tick.
func (r *Recorder) Observe(st core.GameState) {
	if st.Phase == core.PhasePlaying && r.prev.Phase != core.PhasePlaying {
		r.playTicks = 0
	}
	if st.Phase == core.PhasePlaying && !st.Paused {
		r.playTicks++
	}

	if st.GameOver {
		if !r.saved {
			r.save(st.Score)
			r.saved = true
		}
	} else {
		r.saved = false
	}

	r.prev = st
}

// save records a finished session. Failures are logged, never fatal.
func (r *Recorder) save(score int) {
	if score > r.best {
		r.best = score
	}
	if r.store == nil || score <= 0 {
		return
	}

	played := r.Played()
	if _, err := r.store.SaveScore(r.gameID, r.player, score, played); err != nil {
		r.logger.Warn("could not save score", "player", r.player, "score", score, "error", err)
		return
	}
	r.logger.Debug("score saved", "player", r.player, "score", score, "played", played)
}

// Played returns the unpaused time of the current or last session.
func (r *Recorder) Played() time.Duration {
	return time.Duration(r.playTicks) * time.Second / time.Duration(r.tickRate)
}

// Best returns the highest score seen, stored or from this process.
func (r *Recorder) Best() int {
	return r.best
}
