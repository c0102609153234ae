// Package llm abstracts the generative-language backend behind a single
// completion call so the provider can be selected at startup instead of
// maintaining parallel route variants per provider.
package llm

import "context"

// Client sends a prompt to a generative-language backend and returns its
// free-text response verbatim. Implementations make a single synchronous
// attempt; a transient failure surfaces to the caller as-is.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
