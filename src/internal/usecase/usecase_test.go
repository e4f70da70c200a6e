package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"kerjabantu-service/src/internal/entity"
	"kerjabantu-service/src/internal/fixture"
	"kerjabantu-service/src/internal/gateway/messaging"
	"kerjabantu-service/src/internal/repository"
	"kerjabantu-service/src/internal/store"
	"kerjabantu-service/src/internal/usecase"
	httpError "kerjabantu-service/src/pkg/http-error"
	"kerjabantu-service/src/pkg/log"
	"kerjabantu-service/src/pkg/utils"
)

const sessionID = "session-test"

type recordingEnqueuer struct {
	mu    sync.Mutex
	tasks []*asynq.Task
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

type stubGeocoder struct {
	calls []string
	loc   entity.Location
	err   error
}

func (s *stubGeocoder) Geocode(_ context.Context, address string) (entity.Location, error) {
	s.calls = append(s.calls, address)
	if s.err != nil {
		return entity.Location{}, s.err
	}
	loc := s.loc
	loc.Address = address
	return loc, nil
}

type harness struct {
	sessions   *store.Manager
	repo       *repository.MemorySessionRepository
	publisher  *messaging.RecordingPublisher
	tasks      *recordingEnqueuer
	geocoder   *stubGeocoder
	users      *usecase.UserUseCase
	kerjaMates *usecase.KerjaMateUseCase
	jobs       *usecase.JobUseCase
	consult    *usecase.ConsultUseCase
	training   *usecase.TrainingUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := log.Log{}
	validate := validator.New()
	repo := repository.NewMemorySessionRepository()

	sessions, err := store.NewManager(context.Background(), repository.NewStaticCatalogRepository(), repo, logger)
	require.NoError(t, err)

	h := &harness{
		sessions:  sessions,
		repo:      repo,
		publisher: &messaging.RecordingPublisher{},
		tasks:     &recordingEnqueuer{},
		geocoder:  &stubGeocoder{loc: entity.Location{Lat: -6.2, Lng: 106.8}},
	}
	h.users = usecase.NewUserUseCase(logger, validate, sessions, messaging.NewWalletProducer(h.publisher, logger))
	h.kerjaMates = usecase.NewKerjaMateUseCase(logger, validate, sessions)
	h.jobs = usecase.NewJobUseCase(logger, validate, sessions, messaging.NewJobProducer(h.publisher, logger), h.geocoder, h.tasks)
	h.consult = usecase.NewConsultUseCase(logger, validate, fixture.ConsultAnswers(), fixture.ConsultTopics())
	h.training = usecase.NewTrainingUseCase(logger, validate, fixture.TrainingCourses(), fixture.Mentors(), fixture.TrainingBadges())
	return h
}

func (h *harness) store(t *testing.T) *store.Store {
	t.Helper()
	st, err := h.sessions.Get(context.Background(), sessionID)
	require.NoError(t, err)
	return st
}

func requireCode(t *testing.T, result utils.Result, code int) {
	t.Helper()
	require.Error(t, result.Error)
	var httpErr *httpError.HttpError
	require.True(t, errors.As(result.Error, &httpErr), "unexpected error type %T", result.Error)
	require.Equal(t, code, httpErr.Code, httpErr.Message)
}

func requireOK(t *testing.T, result utils.Result) {
	t.Helper()
	require.NoError(t, result.Error)
}
