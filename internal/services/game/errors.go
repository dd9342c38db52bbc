package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveAnnouncement GameError = "no game has been announced"
	ErrWrongChannel         GameError = "command must be used in the game channel"
	ErrAlreadyRunning       GameError = "game is already running"
	ErrNoRoundInProgress    GameError = "no round in progress"
	ErrGameNotRunning       GameError = "no game in progress"
	ErrNoPlayers            GameError = "no players registered"
	ErrNotRegistered        GameError = "player is not registered"
	ErrNotInSubmissionPhase GameError = "not in submission phase"
	ErrInvalidChoice        GameError = "choice must be A or B"
	ErrNilConfig            GameError = "config cannot be nil"
	ErrNilResultsRepo       GameError = "results repository cannot be nil"
	ErrNilMessaging         GameError = "messaging service cannot be nil"
)
