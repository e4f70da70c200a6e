package config

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"kerjabantu-service/src/internal/delivery/http/middleware"
	"kerjabantu-service/src/internal/gateway/geo"
	"kerjabantu-service/src/internal/gateway/messaging"
	"kerjabantu-service/src/internal/repository"
	"kerjabantu-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app         *fiber.App
	publisher   *messaging.RecordingPublisher
	application *Application
}

func newTestServer(t *testing.T, burst int) *testServer {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	v.Set("ratelimit.wallet.burst", burst)
	v.Set("ratelimit.wallet.rps", 0.001)

	publisher := &messaging.RecordingPublisher{}
	app := NewFiber(v)
	application, err := Bootstrap(context.Background(), &BootstrapConfig{
		App:       app,
		Log:       log.NewLogger("kerjabantu-test", "ERROR"),
		Validate:  NewValidator(v),
		Config:    v,
		Catalog:   repository.NewStaticCatalogRepository(),
		Sessions:  repository.NewMemorySessionRepository(),
		Publisher: publisher,
		Async:     asynq.NewServeMux(),
	})
	require.NoError(t, err)
	return &testServer{app: app, publisher: publisher, application: application}
}

func (s *testServer) do(t *testing.T, method, path, session, body string) (envelope, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	out.Code = resp.StatusCode
	return out, resp.Header.Get(middleware.SessionHeader)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, 5)
	out, session := s.do(t, fiber.MethodGet, "/health", "", "")
	assert.Equal(t, fiber.StatusOK, out.Code)
	assert.NotEmpty(t, session)
}

func TestProfileOfNewSession(t *testing.T) {
	s := newTestServer(t, 5)
	out, session := s.do(t, fiber.MethodGet, "/api/v1/me", "", "")
	require.Equal(t, fiber.StatusOK, out.Code)
	assert.Len(t, session, 36)

	var profile struct {
		User struct {
			ID            string `json:"id"`
			WalletBalance int64  `json:"walletBalance"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &profile))
	assert.Equal(t, "user-001", profile.User.ID)
	assert.Equal(t, int64(500000), profile.User.WalletBalance)
}

func TestHireThroughHTTP(t *testing.T) {
	s := newTestServer(t, 5)
	const session = "session-hire"

	out, _ := s.do(t, fiber.MethodPost, "/api/v1/jobs/job-001/hire", session, `{"kerjaMateId":"km-002"}`)
	require.Equal(t, fiber.StatusOK, out.Code, string(out.Data))

	var hired struct {
		Job struct {
			Status      string `json:"status"`
			KerjaMateID string `json:"kerjaMateId"`
		} `json:"job"`
		Balance int64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &hired))
	assert.Equal(t, "assigned", hired.Job.Status)
	assert.Equal(t, "km-002", hired.Job.KerjaMateID)
	assert.Equal(t, int64(300000), hired.Balance)
	assert.Len(t, s.publisher.Topic("job-assigned"), 1)

	out, _ = s.do(t, fiber.MethodPost, "/api/v1/jobs/job-001/hire", session, `{"kerjaMateId":"km-002"}`)
	assert.Equal(t, fiber.StatusConflict, out.Code)
	assert.False(t, out.Success)
}

func TestDraftRoutesAreNotJobIDs(t *testing.T) {
	s := newTestServer(t, 5)
	out, _ := s.do(t, fiber.MethodGet, "/api/v1/jobs/draft", "session-draft", "")
	assert.Equal(t, fiber.StatusOK, out.Code)
	assert.Equal(t, "Draft", out.Message)

	out, _ = s.do(t, fiber.MethodGet, "/api/v1/jobs/job-404", "session-draft", "")
	assert.Equal(t, fiber.StatusNotFound, out.Code)
}

func TestListFiltersThroughHTTP(t *testing.T) {
	s := newTestServer(t, 5)
	out, _ := s.do(t, fiber.MethodGet, "/api/v1/kerjamates?skill=cleaning&available=true", "session-filter", "")
	assert.Equal(t, fiber.StatusBadRequest, out.Code)

	out, _ = s.do(t, fiber.MethodGet, "/api/v1/jobs?status=open", "session-filter", "")
	require.Equal(t, fiber.StatusOK, out.Code)
	var jobs struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &jobs))
	assert.Equal(t, 4, jobs.Total)
}

func TestWalletIsRateLimited(t *testing.T) {
	s := newTestServer(t, 2)
	const session = "session-wallet"
	for i := 0; i < 2; i++ {
		out, _ := s.do(t, fiber.MethodPost, "/api/v1/wallet/topup", session, `{"amount":10000}`)
		require.Equal(t, fiber.StatusOK, out.Code)
	}
	out, _ := s.do(t, fiber.MethodPost, "/api/v1/wallet/topup", session, `{"amount":10000}`)
	assert.Equal(t, fiber.StatusTooManyRequests, out.Code)

	out, _ = s.do(t, fiber.MethodPost, "/api/v1/wallet/topup", "session-other", `{"amount":10000}`)
	assert.Equal(t, fiber.StatusOK, out.Code)
	assert.Len(t, s.publisher.Topic("wallet-topup"), 3)
}

func TestConsultThroughHTTP(t *testing.T) {
	s := newTestServer(t, 5)
	out, _ := s.do(t, fiber.MethodGet, "/api/v1/consult/topics", "", "")
	assert.Equal(t, fiber.StatusOK, out.Code)

	out, _ = s.do(t, fiber.MethodPost, "/api/v1/consult/ask", "", `{"question":""}`)
	assert.Equal(t, fiber.StatusBadRequest, out.Code)
}

func TestTrainingCatalogThroughHTTP(t *testing.T) {
	s := newTestServer(t, 5)
	out, _ := s.do(t, fiber.MethodGet, "/api/v1/training?category=finance", "", "")
	require.Equal(t, fiber.StatusOK, out.Code)

	var catalog struct {
		Courses []struct {
			ID string `json:"id"`
		} `json:"courses"`
		Mentors []json.RawMessage `json:"mentors"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &catalog))
	require.Len(t, catalog.Courses, 1)
	assert.Equal(t, "course-005", catalog.Courses[0].ID)
	assert.Len(t, catalog.Mentors, 3)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	s := newTestServer(t, 5)
	out, _ := s.do(t, fiber.MethodGet, "/api/v1/nowhere", "", "")
	assert.Equal(t, fiber.StatusNotFound, out.Code)
	assert.False(t, out.Success)
}

func TestNewSchedulerRejectsBadSchedule(t *testing.T) {
	s := newTestServer(t, 5)
	v := viper.New()
	setDefaults(v)
	v.Set("session.evict_schedule", "every now and then")
	_, err := NewScheduler(context.Background(), v, log.NewLogger("kerjabantu-test", "ERROR"), s.application.Sessions, s.application.WalletLimiter)
	assert.Error(t, err)

	v.Set("session.evict_schedule", "@every 1m")
	scheduler, err := NewScheduler(context.Background(), v, log.NewLogger("kerjabantu-test", "ERROR"), s.application.Sessions, s.application.WalletLimiter)
	require.NoError(t, err)
	assert.Len(t, scheduler.Entries(), 1)
}

func TestDisabledDrivers(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	client, err := NewRedis(v)
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.Nil(t, NewAsynqClient(v))

	geocoder, err := NewGeocoder(v)
	require.NoError(t, err)
	assert.Nil(t, geocoder)

	publisher, closePublisher, err := NewKafkaPublisher(v, log.NewLogger("kerjabantu-test", "ERROR"))
	require.NoError(t, err)
	assert.Nil(t, publisher)
	closePublisher()

	v.Set("kafka.producer.enabled", true)
	v.Set("kafka.producer.driver", "memory")
	publisher, _, err = NewKafkaPublisher(v, log.NewLogger("kerjabantu-test", "ERROR"))
	require.NoError(t, err)
	assert.IsType(t, &messaging.RecordingPublisher{}, publisher)

	v.Set("kafka.producer.driver", "carrier-pigeon")
	_, _, err = NewKafkaPublisher(v, log.NewLogger("kerjabantu-test", "ERROR"))
	assert.Error(t, err)

	v.Set("catalog.source", "csv")
	_, _, err = NewCatalogRepository(v, log.NewLogger("kerjabantu-test", "ERROR"))
	assert.Error(t, err)
}

func TestNewGeocoderWithKey(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("thirdparty.google.api_key", "AIza-test-key")

	geocoder, err := NewGeocoder(v)
	require.NoError(t, err)
	require.NotNil(t, geocoder)
	assert.Equal(t, "id", geocoder.(*geo.GoogleGeocoder).Region)
}
