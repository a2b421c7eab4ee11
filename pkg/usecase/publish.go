package usecase

import (
	"context"
	"log/slog"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// PublishStrip delivers an already-stored strip through one channel. It
// never generates: a missing artifact is surfaced as the store's not-found
// error so the operator knows to run generation first.
func (x *UseCase) PublishStrip(ctx context.Context, input *model.PublishStripInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	publisher := x.clients.Publisher(input.Channel)
	if publisher == nil {
		return goerr.Wrap(types.ErrInvalidOption, "no publisher configured for channel",
			goerr.V("channel", input.Channel),
		)
	}

	strip, err := x.clients.StripRepository().Get(ctx, input.Repo, input.Date)
	if err != nil {
		return goerr.Wrap(err, "no stored strip to publish",
			goerr.V("repo", input.Repo.Slug()),
			goerr.V("date", input.Date),
		)
	}

	if err := publisher.Publish(ctx, strip); err != nil {
		return err
	}

	logging.From(ctx).Info("Published strip",
		slog.String("repo", input.Repo.Slug()),
		slog.String("date", string(input.Date)),
		slog.String("channel", string(input.Channel)),
	)

	return nil
}
