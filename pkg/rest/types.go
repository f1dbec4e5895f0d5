// Package rest holds the JSON shapes of the public HTTP API.
package rest

type Professor struct {
	Name           string   `json:"name"`
	Rating         float64  `json:"rating"`
	Difficulty     *float64 `json:"difficulty"`
	WouldTakeAgain *float64 `json:"wouldTakeAgain"`
	NumRatings     int      `json:"numRatings"`
	Department     *string  `json:"department"`
	Summary        string   `json:"summary"`
	Reviews        []Review `json:"reviews"`
}

type Review struct {
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Course *string `json:"course"`
	Date   *string `json:"date"`
}

type Health struct {
	Status           string `json:"status"`
	School           string `json:"school"`
	ClaudeConfigured bool   `json:"claude_configured"`
}

// Error is the body of every non-2xx response.
type Error struct {
	// Code is a stable machine-readable error code.
	Code ErrorCode `json:"code"`

	// Message is safe to show to the user.
	Message string `json:"message"`

	// SupportID is the request trace id.
	SupportID string `json:"supportId"`
}

type ErrorCode string
