package service

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ingunnnaevdal/masterevaluering/internal/dto"
	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/logger"
	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/serverutils"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/memory"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/specification"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/unitofwork"
	"github.com/ingunnnaevdal/masterevaluering/pkg/dataset"
	"github.com/ingunnnaevdal/masterevaluering/pkg/events"
	"github.com/ingunnnaevdal/masterevaluering/pkg/planner"
	"github.com/ingunnnaevdal/masterevaluering/pkg/selector"
	"github.com/ingunnnaevdal/masterevaluering/pkg/summary"
)

// RankOptions are the four choices of the ranking widget, best first. Equal
// ranks across summaries are allowed.
var RankOptions = []string{"Best", "Nest best", "Nest dårligst", "Dårligst"}

type IEvaluationService interface {
	// Current returns the article under the user's cursor together with its
	// display selection, creating the user's progress document on first call.
	// A nil response means every article has been evaluated.
	Current(ctx context.Context, brukerID string) (*dto.CurrentArticleResponse, error)
	Submit(ctx context.Context, req *dto.SubmitEvaluationRequest) (*dto.SubmitEvaluationResponse, error)
}

type evaluationService struct {
	uowFactory unitofwork.RepositoryFactory
	data       *dataset.Dataset
	selections *memory.SelectionRepository
	publisher  IPublisherService
	log        logger.ILogger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewEvaluationService(
	uowFactory unitofwork.RepositoryFactory,
	data *dataset.Dataset,
	selections *memory.SelectionRepository,
	publisher IPublisherService,
	log logger.ILogger,
	rng *rand.Rand,
) IEvaluationService {
	return &evaluationService{
		uowFactory: uowFactory,
		data:       data,
		selections: selections,
		publisher:  publisher,
		log:        log,
		rng:        rng,
	}
}

func (s *evaluationService) Current(ctx context.Context, brukerID string) (*dto.CurrentArticleResponse, error) {
	progress, err := s.loadOrCreateProgress(ctx, brukerID)
	if err != nil {
		return nil, err
	}
	if progress.Complete() {
		return nil, nil
	}

	article, err := s.data.Article(progress.CurrentArticleIndex())
	if err != nil {
		return nil, err
	}

	selection := s.selectionFor(brukerID, progress.CurrentIndex, article)

	panels := make([]dto.SummaryPanelResponse, 0, len(selection))
	for _, sum := range selection {
		panel := dto.SummaryPanelResponse{Kilde: sum.Label, Tekst: sum.Text}
		if items, ok := summary.Bullets(sum.Text); ok {
			panel.Punkter = items
		}
		panels = append(panels, panel)
	}

	return &dto.CurrentArticleResponse{
		Position: progress.CurrentIndex + 1,
		Total:    len(progress.RandomOrder),
		Article: dto.ArticleResponse{
			UUID:         article.UUID,
			Title:        article.Title,
			Byline:       article.Byline,
			CreationDate: article.CreationDate,
			LeadText:     article.LeadText,
			BodyText:     article.BodyText,
		},
		Summaries:   panels,
		RankOptions: RankOptions,
	}, nil
}

func (s *evaluationService) Submit(ctx context.Context, req *dto.SubmitEvaluationRequest) (*dto.SubmitEvaluationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	progress, err := uow.UserProgressRepository().FindOne(ctx,
		specification.ByBrukerID{BrukerID: req.BrukerID},
	)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, serverutils.NewBadRequestError("ingen evaluering er i gang for denne brukeren")
	}
	if progress.Complete() {
		return nil, serverutils.NewConflictError("alle artikler er allerede evaluert")
	}

	key := memory.SelectionKey{BrukerID: req.BrukerID, Cursor: progress.CurrentIndex}
	selection, found := s.selections.Get(key)
	if !found {
		// The selection aged out or the process restarted; the client must
		// re-fetch the article so rankings match what is on screen.
		return nil, serverutils.NewConflictError("visningen er utløpt, hent artikkelen på nytt")
	}

	if err := validateRankings(req.Rangeringer, selection); err != nil {
		return nil, err
	}

	article, err := s.data.Article(progress.CurrentArticleIndex())
	if err != nil {
		return nil, err
	}

	kilder := make([]string, 0, len(selection))
	for _, sum := range selection {
		kilder = append(kilder, sum.Label)
	}

	evaluation := entity.ArticleEvaluation{
		Id:            uuid.New(),
		BrukerID:      req.BrukerID,
		RandomListPos: progress.CurrentIndex,
		DataIdx:       progress.CurrentArticleIndex(),
		ArticleUUID:   article.UUID,
		Rangeringer:   req.Rangeringer,
		Kilder:        kilder,
		Kommentar:     req.Kommentar,
		CreatedAt:     time.Now(),
	}

	// The evaluation insert and the cursor bump commit together: a failed
	// save leaves the cursor where it was and the same article is
	// re-presented for resubmission.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ArticleEvaluationRepository().Create(ctx, &evaluation); err != nil {
		return nil, err
	}
	if err := uow.UserProgressRepository().AdvanceCursor(ctx, progress.Id, progress.CurrentIndex); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.selections.Delete(key)
	s.publishSaved(ctx, &evaluation, len(progress.RandomOrder))

	next := progress.CurrentIndex + 1
	res := &dto.SubmitEvaluationResponse{
		Total: len(progress.RandomOrder),
	}
	if next >= len(progress.RandomOrder) {
		res.State = dto.StateComplete
		res.Position = len(progress.RandomOrder)
	} else {
		res.State = dto.StateEvaluating
		res.Position = next + 1
	}
	return res, nil
}

// loadOrCreateProgress fetches the user's progress document, planning and
// persisting a fresh permutation on first contact. The permutation is never
// regenerated afterward.
func (s *evaluationService) loadOrCreateProgress(ctx context.Context, brukerID string) (*entity.UserProgress, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	progress, err := uow.UserProgressRepository().FindOne(ctx,
		specification.ByBrukerID{BrukerID: brukerID},
	)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		return progress, nil
	}

	s.rngMu.Lock()
	order := planner.Plan(s.rng, s.data.Len())
	s.rngMu.Unlock()

	progress = &entity.UserProgress{
		Id:           uuid.New(),
		BrukerID:     brukerID,
		RandomOrder:  order,
		CurrentIndex: 0,
		CreatedAt:    time.Now(),
	}
	if err := uow.UserProgressRepository().Create(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// selectionFor returns the cached display selection for (user, cursor),
// computing and caching it on first view. Re-renders before submission always
// see the same summaries in the same order.
func (s *evaluationService) selectionFor(brukerID string, cursor int, article *dataset.Article) []selector.Summary {
	key := memory.SelectionKey{BrukerID: brukerID, Cursor: cursor}
	if cached, found := s.selections.Get(key); found {
		return cached
	}

	s.rngMu.Lock()
	selection := selector.Select(s.rng, article.Summaries)
	s.rngMu.Unlock()

	s.selections.Save(key, selection)
	return selection
}

func validateRankings(rangeringer map[string]string, selection []selector.Summary) error {
	shown := make(map[string]bool, len(selection))
	for _, sum := range selection {
		shown[sum.Label] = true
	}
	if len(rangeringer) != len(selection) {
		return serverutils.NewBadRequestError("alle viste sammendrag må rangeres")
	}
	for kilde, rank := range rangeringer {
		if !shown[kilde] {
			return serverutils.NewBadRequestError("ukjent sammendragskilde: " + kilde)
		}
		valid := false
		for _, opt := range RankOptions {
			if opt == rank {
				valid = true
				break
			}
		}
		if !valid {
			return serverutils.NewBadRequestError("ugyldig rangering: " + rank)
		}
	}
	return nil
}

// publishSaved emits the evaluation.saved event. Delivery is best effort:
// the evaluation is already committed, so a publish failure is only logged.
func (s *evaluationService) publishSaved(ctx context.Context, evaluation *entity.ArticleEvaluation, total int) {
	payload, err := json.Marshal(events.EvaluationSaved{
		BrukerID:    evaluation.BrukerID,
		ArticleUUID: evaluation.ArticleUUID,
		CursorPos:   evaluation.RandomListPos,
		Total:       total,
	})
	if err != nil {
		s.log.Error("evaluation", "failed to encode evaluation.saved event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, events.TopicEvaluationSaved, payload); err != nil {
		s.log.Error("evaluation", "failed to publish evaluation.saved event", map[string]interface{}{"error": err.Error()})
	}
}
