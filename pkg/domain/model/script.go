package model

import (
	"encoding/json"
	"strings"

	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PanelCount is the fixed number of panels in a strip script.
const PanelCount = 4

// Bubble is one line of dialogue in a panel.
type Bubble struct {
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text"`
}

// UnmarshalJSON accepts both the object form {"speaker": ..., "text": ...}
// and a bare string. Language models produce either shape for dialogue.
func (x *Bubble) UnmarshalJSON(data []byte) error {
	var line string
	if err := json.Unmarshal(data, &line); err == nil {
		*x = Bubble{Text: line}
		return nil
	}

	type bubbleAlias Bubble
	var b bubbleAlias
	if err := json.Unmarshal(data, &b); err != nil {
		return goerr.Wrap(err, "bubble must be a string or a speaker/text object")
	}
	*x = Bubble(b)
	return nil
}

func (x Bubble) String() string {
	if x.Speaker == "" {
		return x.Text
	}
	return x.Speaker + ": " + x.Text
}

// Panel is the script of a single comic panel.
type Panel struct {
	Title   string   `json:"title"`
	Scene   string   `json:"scene"`
	Bubbles []Bubble `json:"bubbles,omitempty"`
}

func (x *Panel) Validate() error {
	if strings.TrimSpace(x.Title) == "" {
		return goerr.Wrap(types.ErrInvalidScript, "panel title is empty")
	}
	if strings.TrimSpace(x.Scene) == "" {
		return goerr.Wrap(types.ErrInvalidScript, "panel scene is empty")
	}
	for i, b := range x.Bubbles {
		if strings.TrimSpace(b.Text) == "" {
			return goerr.Wrap(types.ErrInvalidScript, "bubble text is empty", goerr.V("bubble", i))
		}
	}
	return nil
}

// PanelScript is the full strip script: exactly PanelCount panels in reading
// order. Panels 1-3 dramatize individual commits, panel 4 wraps up the day.
type PanelScript []Panel

func (x PanelScript) Validate() error {
	if len(x) != PanelCount {
		return goerr.Wrap(types.ErrInvalidScript, "script must have exactly 4 panels", goerr.V("panels", len(x)))
	}
	for i := range x {
		if err := x[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid panel", goerr.V("panel", i+1))
		}
	}
	return nil
}

// ParsePanelScript decodes a language model response into a validated script.
// A surrounding markdown code fence is tolerated; anything else that is not
// an array of four well-formed panels is rejected.
func ParsePanelScript(raw string) (PanelScript, error) {
	text := stripCodeFence(raw)

	var script PanelScript
	if err := json.Unmarshal([]byte(text), &script); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidScript, "script is not a JSON panel array",
			goerr.V("cause", err.Error()),
			goerr.V("raw", raw),
		)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}

	return script, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line (``` or ```json), then the closing fence.
	if _, rest, ok := strings.Cut(s, "\n"); ok {
		s = rest
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}
