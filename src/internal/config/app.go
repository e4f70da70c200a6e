package config

import (
	"context"

	"kerjabantu-service/src/internal/delivery/http"
	"kerjabantu-service/src/internal/delivery/http/middleware"
	"kerjabantu-service/src/internal/delivery/http/route"
	"kerjabantu-service/src/internal/fixture"
	"kerjabantu-service/src/internal/gateway/geo"
	"kerjabantu-service/src/internal/gateway/messaging"
	"kerjabantu-service/src/internal/repository"
	"kerjabantu-service/src/internal/store"
	"kerjabantu-service/src/internal/usecase"
	"kerjabantu-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Catalog     repository.CatalogRepository
	Sessions    repository.SessionRepository
	Publisher   messaging.Publisher
	Geocoder    geo.Geocoder
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

// Application is what the process keeps running after Bootstrap.
type Application struct {
	Sessions      *store.Manager
	WalletLimiter *middleware.RateLimiter
}

func Bootstrap(ctx context.Context, config *BootstrapConfig) (*Application, error) {
	// setup session stores
	sessions, err := NewSessionManager(ctx, config.Catalog, config.Sessions, config.Log)
	if err != nil {
		return nil, err
	}

	// setup producers
	jobProducer := messaging.NewJobProducer(config.Publisher, config.Log)
	walletProducer := messaging.NewWalletProducer(config.Publisher, config.Log)

	var tasks usecase.TaskEnqueuer
	if config.AsynqClient != nil {
		tasks = config.AsynqClient
	}

	// setup use cases
	userUseCase := usecase.NewUserUseCase(config.Log, config.Validate, sessions, walletProducer)
	kerjaMateUseCase := usecase.NewKerjaMateUseCase(config.Log, config.Validate, sessions)
	jobUseCase := usecase.NewJobUseCase(config.Log, config.Validate, sessions, jobProducer, config.Geocoder, tasks)
	consultUseCase := usecase.NewConsultUseCase(config.Log, config.Validate, fixture.ConsultAnswers(), fixture.ConsultTopics())
	trainingUseCase := usecase.NewTrainingUseCase(config.Log, config.Validate, fixture.TrainingCourses(), fixture.Mentors(), fixture.TrainingBadges())

	// setup controller
	userController := http.NewUserController(userUseCase, config.Log)
	kerjaMateController := http.NewKerjaMateController(kerjaMateUseCase, config.Log)
	jobController := http.NewJobController(jobUseCase, config.Log)
	consultController := http.NewConsultController(consultUseCase, config.Log)
	trainingController := http.NewTrainingController(trainingUseCase, config.Log)

	// setup middleware
	walletLimiter := middleware.NewRateLimiter(
		config.Config.GetFloat64("ratelimit.wallet.rps"),
		config.Config.GetInt("ratelimit.wallet.burst"),
	)

	if config.Async != nil {
		config.Async.HandleFunc(usecase.TypeFindMatches, jobUseCase.FindMatchesTask)
	}

	routeConfig := route.RouteConfig{
		App:                 config.App,
		Log:                 config.Log,
		UserController:      userController,
		KerjaMateController: kerjaMateController,
		JobController:       jobController,
		ConsultController:   consultController,
		TrainingController:  trainingController,
		WalletLimiter:       walletLimiter,
	}
	routeConfig.Setup()

	return &Application{
		Sessions:      sessions,
		WalletLimiter: walletLimiter,
	}, nil
}
