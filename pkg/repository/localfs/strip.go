package localfs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/domain/model"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/repository"
	"github.com/gitoon/gitoon/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

type stripRepository struct {
	mu      sync.Mutex
	baseDir string
}

// New creates a strip repository rooted at baseDir. Artifacts are laid out
// as {baseDir}/{owner}/{name}/{date}.png with a {date}.json sidecar.
func New(baseDir string) (interfaces.StripRepository, error) {
	if baseDir == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "base directory is empty")
	}

	return &stripRepository{baseDir: filepath.Clean(baseDir)}, nil
}

func (r *stripRepository) stripPaths(repo model.TargetRepo, date types.ComicDate) (string, string) {
	dir := filepath.Join(r.baseDir, repo.Owner, repo.Name)
	return filepath.Join(dir, string(date)+".png"), filepath.Join(dir, string(date)+".json")
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

	imagePath, scriptPath := r.stripPaths(repo, date)
	ref := &model.StripRef{ImagePath: imagePath, ScriptPath: scriptPath}

	// The script sidecar is written last, so a present pair means the strip
	// was fully stored by an earlier run. Keep it untouched.
	if fileExists(scriptPath) && fileExists(imagePath) {
		return ref, false, nil
	}

	if err := os.MkdirAll(filepath.Dir(imagePath), 0o755); err != nil {
		return nil, false, goerr.Wrap(err, "failed to create strip directory", goerr.V("path", filepath.Dir(imagePath)))
	}

	if err := writeFileAtomic(imagePath, image); err != nil {
		return nil, false, err
	}

	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to encode strip record",
			goerr.V("repo", repo.Slug()),
			goerr.V("date", date),
		)
	}
	encoded = append(encoded, '\n')
	if err := writeFileAtomic(scriptPath, encoded); err != nil {
		return nil, false, err
	}

	return ref, true, nil
}

func (r *stripRepository) Get(ctx context.Context, repo model.TargetRepo, date types.ComicDate) (*model.ComicStrip, error) {
	imagePath, scriptPath := r.stripPaths(repo, date)

	raw, err := os.ReadFile(filepath.Clean(scriptPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "strip not found",
				goerr.V("repo", repo.Slug()),
				goerr.V("date", date),
			)
		}
		return nil, goerr.Wrap(err, "failed to read strip record", goerr.V("path", scriptPath))
	}

	var record model.StripRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode strip record", goerr.V("path", scriptPath))
	}

	image, err := os.ReadFile(filepath.Clean(imagePath))
	if err != nil {
		if os.IsNotExist(err) {
			// The image always lands before the script, so a lone sidecar
			// means somebody removed the image afterwards.
			return nil, goerr.Wrap(repository.ErrNotFound, "strip image is missing",
				goerr.V("repo", repo.Slug()),
				goerr.V("date", date),
				goerr.V("path", imagePath),
			)
		}
		return nil, goerr.Wrap(err, "failed to read strip image", goerr.V("path", imagePath))
	}

	return &model.ComicStrip{
		Record: record,
		Image:  image,
		Ref:    model.StripRef{ImagePath: imagePath, ScriptPath: scriptPath},
	}, nil
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// writeFileAtomic writes into a temporary file in the destination directory
// and renames it into place, so readers never observe a partial artifact.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("path", path))
	}

	if _, err := tmp.Write(data); err != nil {
		safe.Close(tmp)
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to write temp file", goerr.V("path", tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmp.Name()))
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to set file mode", goerr.V("path", tmp.Name()))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		safe.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to move file into place", goerr.V("path", path))
	}

	return nil
}
