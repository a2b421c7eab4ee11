package memory

import "github.com/gitoon/gitoon/pkg/domain/interfaces"

// New creates a new in-memory strip repository
func New() interfaces.StripRepository {
	return &stripRepository{
		strips: make(map[string]*stripData),
	}
}
