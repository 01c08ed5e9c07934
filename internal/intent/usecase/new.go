package usecase

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pKa1/loveSonia/internal/intent"
	"github.com/pKa1/loveSonia/internal/intent/repository"
	"github.com/pKa1/loveSonia/pkg/aitunnel"
	"github.com/pKa1/loveSonia/pkg/llmprovider"
	pkgLog "github.com/pKa1/loveSonia/pkg/log"
)

// Classifier is an optional LLM that answers with a JSON intent.
// *llmprovider.Manager implements it.
type Classifier interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Transcriber turns audio into text. *aitunnel.Client implements it.
type Transcriber interface {
	Transcribe(ctx context.Context, req *aitunnel.TranscriptionRequest) (string, error)
}

// Publisher fans change notices out to realtime subscribers.
type Publisher interface {
	Publish(topic string, payload any)
}

// Config holds the use case tunables.
type Config struct {
	DefaultTimeZone string
	TrustRulesAbove float64 // rule confidence at which rules win over the classifier
	PreviewTTL      time.Duration
	PreviewCapacity int
	Registerer      prometheus.Registerer // nil skips metric registration
}

type implUseCase struct {
	l           pkgLog.Logger
	classifier  Classifier
	transcriber Transcriber
	repo        repository.Repository
	publisher   Publisher
	previews    *previewStore
	metrics     *metrics
	cfg         Config
	now         func() time.Time
}

// New creates a new intent UseCase. classifier, transcriber and publisher may be nil.
func New(
	l pkgLog.Logger,
	classifier Classifier,
	transcriber Transcriber,
	repo repository.Repository,
	publisher Publisher,
	cfg Config,
) intent.UseCase {
	if cfg.DefaultTimeZone == "" {
		cfg.DefaultTimeZone = "UTC"
	}
	if cfg.PreviewTTL <= 0 {
		cfg.PreviewTTL = 15 * time.Minute
	}
	if cfg.PreviewCapacity <= 0 {
		cfg.PreviewCapacity = 1024
	}

	return &implUseCase{
		l:           l,
		classifier:  classifier,
		transcriber: transcriber,
		repo:        repo,
		publisher:   publisher,
		previews:    newPreviewStore(cfg.PreviewCapacity, cfg.PreviewTTL),
		metrics:     newMetrics(cfg.Registerer),
		cfg:         cfg,
		now:         time.Now,
	}
}
