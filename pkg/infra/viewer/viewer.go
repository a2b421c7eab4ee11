package viewer

import (
	"context"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Publisher opens the stored strip image with the platform viewer. A host
// with no viewer, such as a CI runner, logs the failure and moves on; the
// strip is already on disk at that point.
type Publisher struct {
	goos    string
	command string
}

var _ interfaces.Publisher = (*Publisher)(nil)

type Option func(*Publisher)

// WithCommand overrides the viewer command resolved from the platform.
func WithCommand(command string) Option {
	return func(x *Publisher) {
		x.command = command
	}
}

func New(options ...Option) *Publisher {
	p := &Publisher{goos: runtime.GOOS}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (x *Publisher) Publish(ctx context.Context, strip *model.ComicStrip) error {
	path := strip.Ref.ImagePath
	if path == "" {
		return goerr.Wrap(types.ErrInvalidOption, "strip has no stored image path")
	}

	args, err := x.openArgs(path)
	if err != nil {
		return err
	}

	if err := exec.CommandContext(ctx, args[0], args[1:]...).Run(); err != nil {
		logging.From(ctx).Warn("Failed to open strip with system viewer",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return nil
	}

	logging.From(ctx).Info("Opened strip", slog.String("path", path))

	return nil
}

func (x *Publisher) openArgs(path string) ([]string, error) {
	if x.command != "" {
		return []string{x.command, path}, nil
	}

	switch x.goos {
	case "darwin":
		return []string{"open", path}, nil
	case "linux":
		return []string{"xdg-open", path}, nil
	case "windows":
		return []string{"cmd", "/c", "start", "", path}, nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "no viewer command for platform",
			goerr.V("goos", x.goos),
		)
	}
}
