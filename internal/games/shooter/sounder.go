package shooter

//go:generate go tool mockgen -destination=./mocks/sounder_mock.go -package=mocks . Sounder

// Sound clip names played by the game.
const (
	SoundShoot     = "shoot"
	SoundExplosion = "explosion"
	SoundPlayerHit = "player_hit"
)

// Sounder plays a named sound clip. Implementations must treat unknown or
// missing clips as a no-op.
type Sounder interface {
	Play(name string)
}

type silent struct{}

func (silent) Play(string) {}
