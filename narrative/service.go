package narrative

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redexp/pedigree/i18n"
	"github.com/redexp/pedigree/state"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("pedigree.narrative")

// Collaborator turns a pedigree into prose.
type Collaborator interface {
	Summarize(ctx context.Context, store *state.Store) (string, error)
	DraftNote(ctx context.Context, store *state.Store) (string, error)
}

// Result never carries a Go error. Failures become a message the user can read.
type Result struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
	Busy  bool   `json:"busy,omitempty"`
}

// Service lets one request run at a time. A second request while busy is dropped.
type Service struct {
	Collaborator Collaborator
	Timeout      time.Duration

	busy sync.Mutex
}

func NewService(c Collaborator) *Service {
	return &Service{
		Collaborator: c,
		Timeout:      2 * time.Minute,
	}
}

func (s *Service) Analyze(ctx context.Context, store *state.Store) Result {
	return s.run(ctx, "analysis", func(ctx context.Context) (string, error) {
		return s.Collaborator.Summarize(ctx, store)
	})
}

func (s *Service) MedicalNote(ctx context.Context, store *state.Store) Result {
	return s.run(ctx, "medical note", func(ctx context.Context) (string, error) {
		return s.Collaborator.DraftNote(ctx, store)
	})
}

func (s *Service) run(ctx context.Context, name string, cb func(context.Context) (string, error)) (res Result) {
	if s.Collaborator == nil {
		res.Error = i18n.L("missing_api_key")
		return
	}

	if !s.busy.TryLock() {
		log.Warningf("%s ignored, another request is running", name)
		res.Busy = true
		res.Error = i18n.L("busy")
		return
	}

	defer s.busy.Unlock()

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	text, err := cb(ctx)

	if err != nil {
		log.Errorf("%s: %s", name, err)

		if errors.Is(err, ErrMissingKey) {
			res.Error = i18n.L("missing_api_key")
		} else {
			res.Error = i18n.L("narrative_failed", err.Error())
		}

		return
	}

	res.Text = text

	return
}
