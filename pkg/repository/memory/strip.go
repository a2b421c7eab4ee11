package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type stripData struct {
	image  []byte
	record *model.StripRecord
	ref    *model.StripRef
}

type stripRepository struct {
	mu     sync.RWMutex
	strips map[string]*stripData
}

func stripKey(repo model.TargetRepo, date types.ComicDate) string {
	return repo.Slug() + "@" + string(date)
}

func (r *stripRepository) Put(ctx context.Context, repo model.TargetRepo, date types.ComicDate, image []byte, record *model.StripRecord) (*model.StripRef, bool, error) {
	if err := repo.Validate(); err != nil {
		return nil, false, err
	}
	if err := date.Validate(); err != nil {
		return nil, false, err
	}
	if len(image) == 0 {
		return nil, false, goerr.Wrap(repository.ErrInvalidInput, "strip image is empty",
			goerr.V("repo", repo.Slug()),
			goerr.V("date", date),
		)
	}
	if record == nil {
		return nil, false, goerr.Wrap(repository.ErrInvalidInput, "strip record is nil",
			goerr.V("repo", repo.Slug()),
			goerr.V("date", date),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := stripKey(repo, date)
	if data, exists := r.strips[key]; exists {
		return copyRef(data.ref), false, nil
	}

	ref := &model.StripRef{
		ImagePath:  fmt.Sprintf("mem://%s/%s/%s.png", repo.Owner, repo.Name, date),
		ScriptPath: fmt.Sprintf("mem://%s/%s/%s.json", repo.Owner, repo.Name, date),
	}
	r.strips[key] = &stripData{
		image:  copyImage(image),
		record: copyRecord(record),
		ref:    copyRef(ref),
	}

	return ref, true, nil
}

func (r *stripRepository) Get(ctx context.Context, repo model.TargetRepo, date types.ComicDate) (*model.ComicStrip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.strips[stripKey(repo, date)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "strip not found",
			goerr.V("repo", repo.Slug()),
			goerr.V("date", date),
		)
	}

	return &model.ComicStrip{
		Record: *copyRecord(data.record),
		Image:  copyImage(data.image),
		Ref:    *copyRef(data.ref),
	}, nil
}

// Helper functions for deep copy

func copyImage(image []byte) []byte {
	if image == nil {
		return nil
	}
	cpy := make([]byte, len(image))
	copy(cpy, image)
	return cpy
}

func copyRecord(record *model.StripRecord) *model.StripRecord {
	if record == nil {
		return nil
	}
	cpy := *record

	if record.Commits != nil {
		cpy.Commits = make([]model.Commit, len(record.Commits))
		copy(cpy.Commits, record.Commits)
	}

	if record.Panels != nil {
		cpy.Panels = make(model.PanelScript, len(record.Panels))
		copy(cpy.Panels, record.Panels)
		for i, panel := range record.Panels {
			if panel.Bubbles != nil {
				cpy.Panels[i].Bubbles = make([]model.Bubble, len(panel.Bubbles))
				copy(cpy.Panels[i].Bubbles, panel.Bubbles)
			}
		}
	}

	return &cpy
}

func copyRef(ref *model.StripRef) *model.StripRef {
	if ref == nil {
		return nil
	}
	cpy := *ref
	return &cpy
}
