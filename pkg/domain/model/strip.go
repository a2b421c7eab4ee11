package model

import (
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// MinViablePanels is the fewest rendered panels that still make a strip.
const MinViablePanels = 2

// RenderedPanel is one panel image together with the script it was drawn
// from. Index keeps the reading order of the script, 1-origin.
type RenderedPanel struct {
	Index  int
	Data   []byte
	Source Panel
}

// StripRecord is the persisted sidecar of a comic strip: everything needed
// to rebuild the issue or Slack message without calling any model again.
type StripRecord struct {
	Date    types.ComicDate `json:"date"`
	Repo    string          `json:"repo"`
	Commits []Commit        `json:"commits"`
	Panels  PanelScript     `json:"panels"`
}

func (x *StripRecord) Validate() error {
	if err := x.Date.Validate(); err != nil {
		return err
	}
	if _, err := ParseTargetRepo(x.Repo); err != nil {
		return err
	}
	if len(x.Commits) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "strip record has no commits")
	}
	return x.Panels.Validate()
}

// StripRef locates the stored artifacts of one strip.
type StripRef struct {
	ImagePath  string `json:"image_path"`
	ScriptPath string `json:"script_path"`
}

// ComicStrip is a fully materialized strip: the composed image, its record
// and where both live.
type ComicStrip struct {
	Record StripRecord
	Image  []byte
	Ref    StripRef
}
