package balance

import "errors"

var (
	// ErrNoUnstableEdges is the internal convergence signal of triangle
	// sampling. Step reports it as the Converged outcome, never as an error.
	ErrNoUnstableEdges = errors.New("balance: no unstable edges")

	// ErrInvalidPriority is returned for an enemy priority outside [0,1].
	ErrInvalidPriority = errors.New("balance: enemy priority must be in [0,1]")

	// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
	ErrUnknownPolicy = errors.New("balance: unknown policy")

	// ErrRoundLimit is returned by Run when the round cap is reached first.
	ErrRoundLimit = errors.New("balance: round limit reached before convergence")

	// ErrNotConverged is returned by Factions while unstable edges remain.
	ErrNotConverged = errors.New("balance: universe has not converged")
)
