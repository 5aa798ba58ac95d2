package bootstrap

import (
	"math/rand"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"github.com/ingunnnaevdal/masterevaluering/internal/config"
	"github.com/ingunnnaevdal/masterevaluering/internal/controller"
	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/logger"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/memory"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/unitofwork"
	"github.com/ingunnnaevdal/masterevaluering/internal/service"
	"github.com/ingunnnaevdal/masterevaluering/pkg/dataset"
)

type Container struct {
	// Controllers
	SessionController    controller.ISessionController
	SurveyController     controller.ISurveyController
	EvaluationController controller.IEvaluationController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config, data *dataset.Dataset, questions []config.IntakeQuestion) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Per-session ephemeral state
	selectionRepo := memory.NewSelectionRepository()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Services
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(pubSub, sysLogger)
	surveyService := service.NewSurveyService(uowFactory, questions)
	evaluationService := service.NewEvaluationService(uowFactory, data, selectionRepo, publisherService, sysLogger, rng)
	sessionService := service.NewSessionService(surveyService, evaluationService)

	return &Container{
		SessionController:    controller.NewSessionController(sessionService),
		SurveyController:     controller.NewSurveyController(surveyService),
		EvaluationController: controller.NewEvaluationController(evaluationService),
		ConsumerService:      consumerService,
		Logger:               sysLogger,
	}
}
