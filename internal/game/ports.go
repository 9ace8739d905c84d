package game

// Emitter is the outbound side of the realtime gateway. Implementations must
// not block: the engine calls these while holding its state lock.
type Emitter interface {
	// ToClient sends an event to a single connection.
	ToClient(clientID, event string, data any)
	// Broadcast sends an event to every connection.
	Broadcast(event string, data any)
}

// Store is the durable persistence port. Every call is made fire-and-forget
// from the engine's point of view; failures are logged and never block or
// roll back in-memory state.
type Store interface {
	// UpsertPlayer creates the player if missing, otherwise raises its best
	// score to at least bestScore and adds gamesIncrement to its games count.
	UpsertPlayer(name string, bestScore, gamesIncrement int) error
	// SetBestScore raises the stored best score to at least score.
	SetBestScore(name string, score int) error
	// AppendSession records one completed run.
	AppendSession(name string, score int) error
}
