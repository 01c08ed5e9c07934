package memory

import (
	"sync"
	"time"

	"github.com/pKa1/loveSonia/internal/intent/repository"
	"github.com/pKa1/loveSonia/internal/model"
)

// Repository keeps confirmed intents in process memory. It backs local runs
// without Google credentials.
type Repository struct {
	mu     sync.RWMutex
	events map[string]model.Event
	tasks  map[string]model.Task
	now    func() time.Time
}

var _ repository.Repository = (*Repository)(nil)

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{
		events: make(map[string]model.Event),
		tasks:  make(map[string]model.Task),
		now:    time.Now,
	}
}
