package llm

import (
	"fmt"
	"time"
)

// ErrBackendUnavailable indicates a provider could not be constructed,
// typically because its required credential is missing. It is fatal:
// the process should not serve that provider without credentials.
type ErrBackendUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrBackendUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s backend unavailable: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s backend unavailable", e.Provider)
}

func (e *ErrBackendUnavailable) Unwrap() error { return e.Err }

// ErrGeneration indicates a transport failure, non-2xx response, or
// unusable payload during generation. It is recoverable: callers degrade
// to a fallback value rather than propagating it further.
type ErrGeneration struct {
	Provider    string
	RateLimited bool
	RetryAfter  time.Duration
	Err         error
}

func (e *ErrGeneration) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("%s generation rate limited: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *ErrGeneration) Unwrap() error { return e.Err }

// ErrUnknownProvider indicates a configuration named a backend tag that
// no factory branch recognizes. It is a configuration mistake, not a
// cue to fall back to the mock backend.
type ErrUnknownProvider struct {
	Provider string
}

func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown generation backend: %q", e.Provider)
}

// ErrParse indicates generated output did not contain the expected
// structure. Internal and recoverable: callers fall back to treating the
// raw text as-is.
type ErrParse struct {
	Content string
	Err     error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("unparseable generated output: %v", e.Err)
}

func (e *ErrParse) Unwrap() error { return e.Err }
