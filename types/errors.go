package types

import "errors"

var (
	// ErrEmptyQuery is returned when a chat request carries no query text.
	// This is the only error the chat endpoint surfaces to the caller.
	ErrEmptyQuery = errors.New("chatbot: query must be a non-empty string")

	// ErrNoResponse is returned when a generation provider answers with
	// zero candidates.
	ErrNoResponse = errors.New("chatbot: no response generated")

	// ErrNoAPIKeys is returned when the Gemini service is configured
	// without any API keys.
	ErrNoAPIKeys = errors.New("chatbot: no API keys provided")
)
