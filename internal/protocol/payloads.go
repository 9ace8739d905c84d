package protocol

import (
	"brainrush/internal/challenge"
	"brainrush/internal/leaderboard"
	"brainrush/internal/players"
)

// DashboardJoin is the inbound dashboard-join payload.
type DashboardJoin struct {
	Password string `json:"password"`
}

// SubmitAnswer is the inbound submit-answer payload.
type SubmitAnswer struct {
	AnswerIndex int `json:"answerIndex"`
}

// Welcome acknowledges a student-join.
type Welcome struct {
	Name        string              `json:"name"`
	BestScore   int                 `json:"bestScore"`
	Leaderboard []leaderboard.Entry `json:"leaderboard"`
}

// GameStart acknowledges a start-game.
type GameStart struct {
	TotalChallenges int `json:"totalChallenges"`
}

// ChallengeStart opens a slot. ChallengeNumber is 1-based.
type ChallengeStart struct {
	Challenge       challenge.Challenge `json:"challenge"`
	ChallengeNumber int                 `json:"challengeNumber"`
	TotalChallenges int                 `json:"totalChallenges"`
}

// ReactionTrigger signals that a reaction challenge's shape is now live.
type ReactionTrigger struct {
	TargetShape string `json:"targetShape"`
}

// AnswerResult reports the outcome of a submitted answer.
type AnswerResult struct {
	Correct      bool `json:"correct"`
	Score        int  `json:"score"`
	PointsEarned int  `json:"pointsEarned"`
}

// ChallengeEnd closes a slot, answered or not.
type ChallengeEnd struct {
	ChallengeNumber int `json:"challengeNumber"`
}

// GameEnd reports a finished run.
type GameEnd struct {
	FinalScore  int                 `json:"finalScore"`
	BestScore   int                 `json:"bestScore"`
	Leaderboard []leaderboard.Entry `json:"leaderboard"`
	IsNewRecord bool                `json:"isNewRecord"`
}

// AuthError rejects a dashboard-join with a bad password.
type AuthError struct {
	Message string `json:"message"`
}

// Snapshot is the shared read model pushed to every connection on state
// changes and on the periodic broadcast tick. Also the dashboard-state
// payload.
type Snapshot struct {
	Players          []players.Player        `json:"players"`
	Leaderboard      []leaderboard.Entry     `json:"leaderboard"`
	ActiveGamesCount int                     `json:"activeGamesCount"`
	ActiveGames      []leaderboard.ActiveRun `json:"activeGames"`
}
