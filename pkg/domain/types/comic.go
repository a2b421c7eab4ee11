package types

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type (
	GeminiAPIKey    string
	SlackWebhookURL string
	RunID           string
)

func (x GeminiAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GeminiAPIKey) String() string {
	return "***********"
}

func (x SlackWebhookURL) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SlackWebhookURL) String() string {
	return "***********"
}

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

// ComicDate is a calendar day in UTC, formatted as YYYY-MM-DD. It keys one
// comic strip together with the target repository.
type ComicDate string

const comicDateLayout = "2006-01-02"

// NewComicDate parses and canonicalizes a YYYY-MM-DD string.
func NewComicDate(s string) (ComicDate, error) {
	t, err := time.Parse(comicDateLayout, s)
	if err != nil {
		return "", goerr.Wrap(ErrInvalidOption, "date must be formatted as YYYY-MM-DD", goerr.V("date", s))
	}
	return ComicDate(t.UTC().Format(comicDateLayout)), nil
}

// YesterdayUTC returns the day before the given clock time, in UTC.
func YesterdayUTC(now time.Time) ComicDate {
	return ComicDate(now.UTC().AddDate(0, 0, -1).Format(comicDateLayout))
}

func (x ComicDate) String() string {
	return string(x)
}

func (x ComicDate) Validate() error {
	if _, err := time.Parse(comicDateLayout, string(x)); err != nil {
		return goerr.Wrap(ErrInvalidOption, "date must be formatted as YYYY-MM-DD", goerr.V("date", string(x)))
	}
	return nil
}

// Window returns the half-open UTC range [00:00:00, +24h) of the date.
// The date must be validated beforehand; an invalid date yields zero times.
func (x ComicDate) Window() (time.Time, time.Time) {
	start, err := time.Parse(comicDateLayout, string(x))
	if err != nil {
		return time.Time{}, time.Time{}
	}
	return start, start.Add(24 * time.Hour)
}

// RunOutcome tells how a generation run ended. All three are terminal
// successes; failures are reported as errors instead.
type RunOutcome string

const (
	OutcomeGenerated     RunOutcome = "generated"
	OutcomeNoActivity    RunOutcome = "no_activity"
	OutcomeAlreadyExists RunOutcome = "already_exists"
)

type DeliveryChannel string

const (
	ChannelIssue DeliveryChannel = "issue"
	ChannelSlack DeliveryChannel = "slack"
	ChannelLocal DeliveryChannel = "local"
)

func (x DeliveryChannel) Validate() error {
	switch x {
	case ChannelIssue, ChannelSlack, ChannelLocal:
		return nil
	default:
		return goerr.Wrap(ErrInvalidOption, "unknown delivery channel", goerr.V("channel", string(x)))
	}
}
