package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/repository"
	"github.com/gitoon/gitoon/pkg/stitch"
	"github.com/gitoon/gitoon/pkg/utils/errutil"
	"github.com/gitoon/gitoon/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// GenerateStrip runs the whole pipeline for one repository and one UTC day:
// list commits, write the script, render the panels, stitch and store. A day
// with a stored strip is never regenerated, and a day without commits ends
// as a no-activity outcome before any model call.
func (x *UseCase) GenerateStrip(ctx context.Context, input *model.GenerateStripInput) (*model.GenerateStripResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := x.clients.StripRepository().Get(ctx, input.Repo, input.Date)
	if err == nil {
		logging.From(ctx).Info("Strip already exists, skipping generation",
			slog.String("repo", input.Repo.Slug()),
			slog.String("date", string(input.Date)),
			slog.String("image", existing.Ref.ImagePath),
		)
		return &model.GenerateStripResult{
			Outcome:     types.OutcomeAlreadyExists,
			Ref:         &existing.Ref,
			CommitCount: len(existing.Record.Commits),
			PanelCount:  len(existing.Record.Panels),
		}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to check for an existing strip")
	}

	commits, err := x.clients.CommitSource().ListCommits(ctx, input.Repo, input.Date)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		logging.From(ctx).Info("No commits for the day, nothing to draw",
			slog.String("repo", input.Repo.Slug()),
			slog.String("date", string(input.Date)),
		)
		return &model.GenerateStripResult{Outcome: types.OutcomeNoActivity}, nil
	}

	script, err := x.generateScript(ctx, commits)
	if err != nil {
		return nil, err
	}

	rendered, err := x.renderPanels(ctx, script)
	if err != nil {
		return nil, err
	}

	imageData, err := stitch.Horizontal(rendered)
	if err != nil {
		return nil, err
	}

	record := model.StripRecord{
		Date:    input.Date,
		Repo:    input.Repo.Slug(),
		Commits: commits,
		Panels:  script,
	}

	ref, created, err := x.clients.StripRepository().Put(ctx, input.Repo, input.Date, imageData, &record)
	if err != nil {
		return nil, err
	}
	if !created {
		// Another invocation for the same day won the race.
		logging.From(ctx).Info("Strip was stored by a concurrent run",
			slog.String("repo", input.Repo.Slug()),
			slog.String("date", string(input.Date)),
		)
		return &model.GenerateStripResult{
			Outcome:     types.OutcomeAlreadyExists,
			Ref:         ref,
			CommitCount: len(commits),
			PanelCount:  len(script),
		}, nil
	}

	logging.From(ctx).Info("Generated comic strip",
		slog.String("repo", input.Repo.Slug()),
		slog.String("date", string(input.Date)),
		slog.Int("commits", len(commits)),
		slog.Int("panels", len(rendered)),
		slog.String("image", ref.ImagePath),
	)

	if input.Channel != "" {
		strip := &model.ComicStrip{Record: record, Image: imageData, Ref: *ref}
		x.deliver(ctx, input.Channel, strip)
	}

	return &model.GenerateStripResult{
		Outcome:     types.OutcomeGenerated,
		Ref:         ref,
		CommitCount: len(commits),
		PanelCount:  len(rendered),
	}, nil
}

// deliver hands the finished strip to the configured channel. The strip is
// already stored, so delivery failure never fails the run.
func (x *UseCase) deliver(ctx context.Context, channel types.DeliveryChannel, strip *model.ComicStrip) {
	publisher := x.clients.Publisher(channel)
	if publisher == nil {
		errutil.HandleError(ctx, "no publisher configured for channel",
			goerr.Wrap(types.ErrInvalidOption, "unknown delivery channel", goerr.V("channel", channel)))
		return
	}

	if err := publisher.Publish(ctx, strip); err != nil {
		errutil.HandleError(ctx, "failed to deliver strip", err)
	}
}

func (x *UseCase) generateScript(ctx context.Context, commits []model.Commit) (model.PanelScript, error) {
	userPrompt := buildUserPrompt(commits)

	var raw string
	operation := func() error {
		var err error
		raw, err = x.clients.TextModel().GenerateJSON(ctx, systemPrompt, userPrompt)
		if err != nil {
			if errors.Is(err, types.ErrTransient) {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(x.scriptRetryInterval), scriptMaxAttempts-1), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, goerr.Wrap(err, "script generation failed", goerr.V("commits", len(commits)))
	}

	script, err := model.ParsePanelScript(raw)
	if err != nil {
		// Malformed structure is a generation defect, not a retry case.
		return nil, err
	}

	return script, nil
}

// renderPanels draws every panel in script order. A panel that exhausts its
// attempts is dropped; the strip stays viable down to MinViablePanels.
func (x *UseCase) renderPanels(ctx context.Context, script model.PanelScript) ([]model.RenderedPanel, error) {
	rendered := make([]model.RenderedPanel, 0, len(script))
	for i, panel := range script {
		data, err := x.renderPanel(ctx, panel)
		if err != nil {
			logging.From(ctx).Warn("Panel failed to render, continuing without it",
				slog.Int("panel", i+1),
				slog.String("title", panel.Title),
				slog.Any("error", err),
			)
			continue
		}

		logging.From(ctx).Info("Rendered panel",
			slog.Int("panel", i+1),
			slog.String("title", panel.Title),
		)
		rendered = append(rendered, model.RenderedPanel{Index: i + 1, Data: data, Source: panel})
	}

	if len(rendered) < model.MinViablePanels {
		return nil, goerr.Wrap(types.ErrNotEnoughPanels, "too few panels rendered",
			goerr.V("rendered", len(rendered)),
			goerr.V("required", model.MinViablePanels),
		)
	}

	return rendered, nil
}

func (x *UseCase) renderPanel(ctx context.Context, panel model.Panel) ([]byte, error) {
	prompt := buildImagePrompt(panel)

	var data []byte
	operation := func() error {
		if err := x.imageLimiter.Wait(ctx); err != nil {
			return backoff.Permanent(goerr.Wrap(err, "image request pacing interrupted"))
		}

		raw, err := x.clients.ImageModel().GenerateImage(ctx, prompt)
		if err != nil {
			return err
		}
		if _, _, err := image.Decode(bytes.NewReader(raw)); err != nil {
			return goerr.Wrap(err, "image payload does not decode")
		}

		data = raw
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(x.panelRetryInterval), panelMaxAttempts-1), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return data, nil
}
