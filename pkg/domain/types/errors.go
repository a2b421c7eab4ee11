package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption means a configuration or input value is unusable.
	// It is never retried.
	ErrInvalidOption = goerr.New("invalid option")

	// ErrGitHubAuth means GitHub rejected our credentials. Retrying with
	// the same credentials cannot succeed.
	ErrGitHubAuth = goerr.New("github authentication failed")

	// ErrTransient marks an upstream failure that a later attempt may
	// recover from, such as a timeout, a rate limit or a 5xx response.
	ErrTransient = goerr.New("transient upstream error")

	// ErrInvalidScript means the language model returned panel data that
	// does not satisfy the script contract.
	ErrInvalidScript = goerr.New("invalid panel script")

	// ErrNotEnoughPanels means too few panel images survived rendering to
	// compose a strip.
	ErrNotEnoughPanels = goerr.New("not enough rendered panels")
)
