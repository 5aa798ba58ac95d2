package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/contract"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/specification"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/unitofwork"
)

// In-memory stand-ins for the GORM repositories. Transactions are staged so
// a failed save leaves nothing behind, mirroring the real rollback.

type fakeStore struct {
	mu       sync.Mutex
	surveys  map[string]*entity.SurveyResponse
	progress map[string]*entity.UserProgress
	evals    []*entity.ArticleEvaluation

	failSurveyCreate bool
	failEvalCreate   bool
	failAdvance      bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		surveys:  make(map[string]*entity.SurveyResponse),
		progress: make(map[string]*entity.UserProgress),
	}
}

type fakeUowFactory struct {
	store *fakeStore
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type cursorBump struct {
	id   uuid.UUID
	from int
}

type fakeUow struct {
	store        *fakeStore
	inTx         bool
	pendingEvals []*entity.ArticleEvaluation
	pendingBumps []cursorBump
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.inTx {
		return errors.New("transaction already started")
	}
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	if !u.inTx {
		return errors.New("no transaction to commit")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.evals = append(u.store.evals, u.pendingEvals...)
	for _, bump := range u.pendingBumps {
		for _, p := range u.store.progress {
			if p.Id == bump.id && p.CurrentIndex == bump.from {
				p.CurrentIndex = bump.from + 1
			}
		}
	}
	u.pendingEvals = nil
	u.pendingBumps = nil
	u.inTx = false
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.inTx {
		return errors.New("no transaction to rollback")
	}
	u.pendingEvals = nil
	u.pendingBumps = nil
	u.inTx = false
	return nil
}

func (u *fakeUow) SurveyResponseRepository() contract.SurveyResponseRepository {
	return &fakeSurveyRepo{u: u}
}

func (u *fakeUow) UserProgressRepository() contract.UserProgressRepository {
	return &fakeProgressRepo{u: u}
}

func (u *fakeUow) ArticleEvaluationRepository() contract.ArticleEvaluationRepository {
	return &fakeEvalRepo{u: u}
}

func brukerIDFromSpecs(specs []specification.Specification) string {
	for _, s := range specs {
		if byUser, ok := s.(specification.ByBrukerID); ok {
			return byUser.BrukerID
		}
	}
	return ""
}

type fakeSurveyRepo struct {
	u *fakeUow
}

func (r *fakeSurveyRepo) Create(ctx context.Context, response *entity.SurveyResponse) error {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	if r.u.store.failSurveyCreate {
		return errors.New("store unavailable")
	}
	if _, exists := r.u.store.surveys[response.BrukerID]; exists {
		return errors.New("duplicate survey response")
	}
	cp := *response
	r.u.store.surveys[response.BrukerID] = &cp
	return nil
}

func (r *fakeSurveyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveyResponse, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	if s, ok := r.u.store.surveys[brukerIDFromSpecs(specs)]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSurveyRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	return int64(len(r.u.store.surveys)), nil
}

type fakeProgressRepo struct {
	u *fakeUow
}

func (r *fakeProgressRepo) Create(ctx context.Context, progress *entity.UserProgress) error {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	if _, exists := r.u.store.progress[progress.BrukerID]; exists {
		return errors.New("duplicate progress document")
	}
	cp := *progress
	cp.RandomOrder = append([]int{}, progress.RandomOrder...)
	r.u.store.progress[progress.BrukerID] = &cp
	return nil
}

func (r *fakeProgressRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProgress, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	if p, ok := r.u.store.progress[brukerIDFromSpecs(specs)]; ok {
		cp := *p
		cp.RandomOrder = append([]int{}, p.RandomOrder...)
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProgressRepo) AdvanceCursor(ctx context.Context, id uuid.UUID, from int) error {
	if r.u.store.failAdvance {
		return errors.New("store unavailable")
	}
	if r.u.inTx {
		r.u.pendingBumps = append(r.u.pendingBumps, cursorBump{id: id, from: from})
		return nil
	}
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	for _, p := range r.u.store.progress {
		if p.Id == id && p.CurrentIndex == from {
			p.CurrentIndex = from + 1
			return nil
		}
	}
	return errors.New("cursor moved")
}

func (r *fakeProgressRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	return int64(len(r.u.store.progress)), nil
}

type fakeEvalRepo struct {
	u *fakeUow
}

func (r *fakeEvalRepo) Create(ctx context.Context, evaluation *entity.ArticleEvaluation) error {
	if r.u.store.failEvalCreate {
		return errors.New("store unavailable")
	}
	cp := *evaluation
	if r.u.inTx {
		r.u.pendingEvals = append(r.u.pendingEvals, &cp)
		return nil
	}
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	r.u.store.evals = append(r.u.store.evals, &cp)
	return nil
}

func (r *fakeEvalRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArticleEvaluation, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	brukerID := brukerIDFromSpecs(specs)
	var out []*entity.ArticleEvaluation
	for _, e := range r.u.store.evals {
		if brukerID == "" || e.BrukerID == brukerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEvalRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	evals, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(evals)), nil
}

type fakePublisher struct {
	mu       sync.Mutex
	messages [][]byte
	topics   []string
}

func (p *fakePublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.messages = append(p.messages, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}

func (nopLogger) Info(module, message string, details map[string]interface{}) {}

func (nopLogger) Warn(module, message string, details map[string]interface{}) {}

func (nopLogger) Error(module, message string, details map[string]interface{}) {}

func (nopLogger) Sync() error { return nil }
