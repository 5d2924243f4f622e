package domain

import "errors"

var (
	// ErrNotConfigured indicates the gateway credential is missing; no upstream
	// call is attempted.
	ErrNotConfigured = errors.New("gateway not configured")
	// ErrRateLimited maps an upstream 429.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrQuotaExhausted maps an upstream 402 (credits/billing).
	ErrQuotaExhausted = errors.New("quota exhausted")
	// ErrUpstream covers every other non-2xx upstream response as well as
	// transport-level failures.
	ErrUpstream = errors.New("upstream gateway error")
	// ErrEmptyPrompt is raised when the prompt-engineering model returns only
	// whitespace.
	ErrEmptyPrompt = errors.New("empty generation prompt")
	// ErrNoImage is raised when the image model response carries neither a
	// hosted URL nor inline data.
	ErrNoImage = errors.New("no image produced")
	// ErrValidation covers malformed or incomplete request bodies.
	ErrValidation = errors.New("invalid request")
)
