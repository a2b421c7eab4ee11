package usecase

import (
	"time"

	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/infra"
	"golang.org/x/time/rate"
)

const (
	// Script and panel calls retry this many times before giving up.
	scriptMaxAttempts = 3
	panelMaxAttempts  = 3

	defaultScriptRetryInterval  = 2 * time.Second
	defaultPanelRetryInterval   = 5 * time.Second
	defaultImageRequestInterval = 2 * time.Second
)

type UseCase struct {
	clients *infra.Clients

	scriptRetryInterval time.Duration
	panelRetryInterval  time.Duration
	imageLimiter        *rate.Limiter
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithScriptRetryInterval sets the delay between script generation attempts.
func WithScriptRetryInterval(d time.Duration) Option {
	return func(x *UseCase) {
		x.scriptRetryInterval = d
	}
}

// WithPanelRetryInterval sets the delay between render attempts of one panel.
func WithPanelRetryInterval(d time.Duration) Option {
	return func(x *UseCase) {
		x.panelRetryInterval = d
	}
}

// WithImageRequestInterval sets the minimum spacing between any two image
// generation requests.
func WithImageRequestInterval(d time.Duration) Option {
	return func(x *UseCase) {
		x.imageLimiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:             clients,
		scriptRetryInterval: defaultScriptRetryInterval,
		panelRetryInterval:  defaultPanelRetryInterval,
		imageLimiter:        rate.NewLimiter(rate.Every(defaultImageRequestInterval), 1),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
