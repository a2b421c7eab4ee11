package model

import "github.com/gitoon/gitoon/pkg/domain/types"

// GenerateStripInput selects which repository and day to draw. Channel is
// optional; when set, the strip is also delivered right after generation.
type GenerateStripInput struct {
	Repo    TargetRepo
	Date    types.ComicDate
	Channel types.DeliveryChannel
}

func (x *GenerateStripInput) Validate() error {
	if err := x.Repo.Validate(); err != nil {
		return err
	}
	if err := x.Date.Validate(); err != nil {
		return err
	}
	if x.Channel != "" {
		return x.Channel.Validate()
	}
	return nil
}

// GenerateStripResult reports how the run ended. Ref is set for every
// outcome except OutcomeNoActivity.
type GenerateStripResult struct {
	Outcome     types.RunOutcome
	Ref         *StripRef
	CommitCount int
	PanelCount  int
}

type PublishStripInput struct {
	Repo    TargetRepo
	Date    types.ComicDate
	Channel types.DeliveryChannel
}

func (x *PublishStripInput) Validate() error {
	if err := x.Repo.Validate(); err != nil {
		return err
	}
	if err := x.Date.Validate(); err != nil {
		return err
	}
	return x.Channel.Validate()
}
