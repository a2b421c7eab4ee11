package viewer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/infra/viewer"
	"github.com/m-mizutani/gt"
)

func TestOpenArgs(t *testing.T) {
	cases := map[string][]string{
		"darwin":  {"open", "/tmp/strip.png"},
		"linux":   {"xdg-open", "/tmp/strip.png"},
		"windows": {"cmd", "/c", "start", "", "/tmp/strip.png"},
	}

	for goos, expect := range cases {
		t.Run(goos, func(t *testing.T) {
			p := viewer.NewForPlatform(goos)
			args := gt.R1(p.OpenArgs("/tmp/strip.png")).NoError(t)
			gt.V(t, args).Equal(expect)
		})
	}

	t.Run("unsupported platform fails", func(t *testing.T) {
		p := viewer.NewForPlatform("plan9")
		_, err := p.OpenArgs("/tmp/strip.png")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("command override wins", func(t *testing.T) {
		p := viewer.NewForPlatform("plan9", viewer.WithCommand("feh"))
		args := gt.R1(p.OpenArgs("/tmp/strip.png")).NoError(t)
		gt.V(t, args).Equal([]string{"feh", "/tmp/strip.png"})
	})
}

func TestPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the viewer command with the image path", func(t *testing.T) {
		dir := t.TempDir()
		captured := filepath.Join(dir, "opened.txt")
		script := filepath.Join(dir, "viewer.sh")
		gt.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nprintf '%s' \"$1\" > "+captured+"\n"), 0o755))

		p := viewer.New(viewer.WithCommand(script))
		strip := &model.ComicStrip{Ref: model.StripRef{ImagePath: "/tmp/strips/2026-03-14.png"}}

		gt.NoError(t, p.Publish(ctx, strip))

		got := gt.R1(os.ReadFile(captured)).NoError(t)
		gt.V(t, strings.TrimSpace(string(got))).Equal("/tmp/strips/2026-03-14.png")
	})

	t.Run("viewer failure is tolerated", func(t *testing.T) {
		p := viewer.New(viewer.WithCommand("/no/such/viewer"))
		strip := &model.ComicStrip{Ref: model.StripRef{ImagePath: "/tmp/strips/2026-03-14.png"}}

		gt.NoError(t, p.Publish(ctx, strip))
	})

	t.Run("missing image path fails", func(t *testing.T) {
		p := viewer.New()
		err := p.Publish(ctx, &model.ComicStrip{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
