package gh

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/utils/logging"
	"github.com/gitoon/gitoon/pkg/utils/safe"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

const jpegQuality = 85

// fallbackDir is where the repository's own workflow commits strips, used
// to build a raw.githubusercontent.com URL when the asset upload fails.
const fallbackDir = "comic-strips"

// IssuePublisher posts a strip as an issue on the target repository. The
// image is first uploaded as a release asset so it renders for private
// repositories too; when that fails, the issue links the raw file instead.
type IssuePublisher struct {
	client *Client
}

var _ interfaces.Publisher = (*IssuePublisher)(nil)

func NewIssuePublisher(client *Client) *IssuePublisher {
	return &IssuePublisher{client: client}
}

func (x *IssuePublisher) Publish(ctx context.Context, strip *model.ComicStrip) error {
	repo, err := model.ParseTargetRepo(strip.Record.Repo)
	if err != nil {
		return err
	}
	date := strip.Record.Date

	imageURL := x.uploadStripAsset(ctx, repo, strip)
	if imageURL == "" {
		logging.From(ctx).Warn("Falling back to raw content URL", slog.String("repo", repo.Slug()))
		imageURL = fmt.Sprintf("https://raw.githubusercontent.com/%s/main/%s/%s.png", repo.Slug(), fallbackDir, date)
	}

	title := fmt.Sprintf("Daily Comic — %s — %d commits", date, len(strip.Record.Commits))
	body := issueBody(strip, imageURL)

	issue, _, err := x.client.gh.Issues.Create(ctx, repo.Owner, repo.Name, &github.IssueRequest{
		Title: github.String(title),
		Body:  github.String(body),
	})
	if err != nil {
		return classifyError(err, repo)
	}

	logging.From(ctx).Info("Created comic issue",
		slog.String("repo", repo.Slug()),
		slog.String("title", title),
		slog.String("url", issue.GetHTMLURL()),
	)

	return nil
}

// uploadStripAsset compresses the strip to JPEG and uploads it under a
// per-date release. Any failure is logged and reported as an empty URL;
// the issue still gets created with the fallback link.
func (x *IssuePublisher) uploadStripAsset(ctx context.Context, repo model.TargetRepo, strip *model.ComicStrip) string {
	date := strip.Record.Date

	jpegData, err := encodeJPEG(strip.Image)
	if err != nil {
		logging.From(ctx).Warn("Failed to compress strip image", slog.Any("error", err))
		return ""
	}

	release, _, err := x.client.gh.Repositories.CreateRelease(ctx, repo.Owner, repo.Name, &github.RepositoryRelease{
		TagName: github.String("comic-" + string(date)),
		Name:    github.String("Daily Comic " + string(date)),
		Body:    github.String("Auto-generated comic strip for " + string(date)),
	})
	if err != nil {
		logging.From(ctx).Warn("Failed to create release", slog.Any("error", err))
		return ""
	}

	// The upload API only takes an *os.File, so spill the JPEG to disk.
	tmp, err := os.CreateTemp("", fmt.Sprintf("gitoon.%s.*.jpg", date))
	if err != nil {
		logging.From(ctx).Warn("Failed to create temp file for upload", slog.Any("error", err))
		return ""
	}
	defer safe.Remove(tmp.Name())

	if _, err := tmp.Write(jpegData); err != nil {
		safe.Close(tmp)
		logging.From(ctx).Warn("Failed to write temp file for upload", slog.Any("error", err))
		return ""
	}
	if err := tmp.Close(); err != nil {
		logging.From(ctx).Warn("Failed to close temp file for upload", slog.Any("error", err))
		return ""
	}

	fd, err := os.Open(tmp.Name())
	if err != nil {
		logging.From(ctx).Warn("Failed to reopen temp file for upload", slog.Any("error", err))
		return ""
	}
	defer safe.Close(fd)

	asset, _, err := x.client.gh.Repositories.UploadReleaseAsset(ctx, repo.Owner, repo.Name, release.GetID(), &github.UploadOptions{
		Name:      string(date) + ".jpg",
		MediaType: "image/jpeg",
	}, fd)
	if err != nil {
		logging.From(ctx).Warn("Failed to upload release asset", slog.Any("error", err))
		return ""
	}

	logging.From(ctx).Info("Uploaded strip as release asset",
		slog.String("tag", release.GetTagName()),
		slog.String("url", asset.GetBrowserDownloadURL()),
	)

	return asset.GetBrowserDownloadURL()
}

func issueBody(strip *model.ComicStrip, imageURL string) string {
	lines := []string{
		fmt.Sprintf("![Daily Comic — %s](%s)", strip.Record.Date, imageURL),
		"",
		"---",
		"",
	}

	for i, panel := range strip.Record.Panels {
		lines = append(lines, fmt.Sprintf("### Panel %d: %s", i+1, panel.Title))
		for _, bubble := range panel.Bubbles {
			if bubble.Speaker == "" {
				lines = append(lines, "> "+bubble.Text)
			} else {
				lines = append(lines, fmt.Sprintf("> **%s**: %s", bubble.Speaker, bubble.Text))
			}
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"---",
		fmt.Sprintf("*%d commits summarized into %d panels.*", len(strip.Record.Commits), model.PanelCount),
	)

	return strings.Join(lines, "\n")
}

func encodeJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode strip image")
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, goerr.Wrap(err, "failed to encode strip image as JPEG")
	}

	return buf.Bytes(), nil
}
