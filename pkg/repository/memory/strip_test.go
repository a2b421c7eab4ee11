package memory_test

import (
	"testing"

	"github.com/gitoon/gitoon/pkg/repository/memory"
	"github.com/gitoon/gitoon/pkg/repository/testhelper"
)

func TestMemoryStripRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
