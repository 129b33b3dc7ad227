package bootstrap

import (
	"log"
	"time"

	"krishi-sakhi-be/internal/config"
	"krishi-sakhi-be/internal/constant"
	"krishi-sakhi-be/internal/controller"
	"krishi-sakhi-be/internal/pkg/logger"
	"krishi-sakhi-be/internal/pkg/serverutils"
	"krishi-sakhi-be/internal/repository/unitofwork"
	"krishi-sakhi-be/internal/service"
	"krishi-sakhi-be/pkg/genai"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	ChatController       controller.IChatController
	WeatherController    controller.IWeatherController
	MarketController     controller.IMarketController
	FarmController       controller.IFarmController
	AdvisoryController   controller.IAdvisoryController
	TranscribeController controller.ITranscribeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(pubSub, cfg.App.ActivityTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, sysLogger)

	// 3. Generative client
	var genaiClient genai.Client
	if cfg.Gemini.APIKey == "" {
		log.Printf("[WARN] GEMINI_API_KEY not set, chat runs against the mock client")
		genaiClient = &genai.MockClient{Reply: "Namaskaram! The assistant is running in offline mode."}
	} else {
		genaiClient = genai.NewGeminiClient(
			cfg.Gemini.BaseURL,
			cfg.Gemini.APIKey,
			cfg.Gemini.DefaultModel,
			time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
		)
	}

	// 4. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret, constant.TokenTTL, publisherService)
	chatService := service.NewChatService(uowFactory, genaiClient, publisherService)
	weatherService := service.NewWeatherService(uowFactory)
	marketService := service.NewMarketService(uowFactory)
	farmService := service.NewFarmService(uowFactory, weatherService, marketService, publisherService)
	advisoryService := service.NewAdvisoryService(weatherService)
	transcribeService := service.NewTranscribeService(cfg.Voice.APIURL, cfg.Voice.APIKey, cfg.Voice.UseMock)

	authMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret)

	// 5. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService, authMiddleware),
		ChatController:       controller.NewChatController(chatService, authMiddleware),
		WeatherController:    controller.NewWeatherController(weatherService, authMiddleware),
		MarketController:     controller.NewMarketController(marketService, authMiddleware),
		FarmController:       controller.NewFarmController(farmService, authMiddleware),
		AdvisoryController:   controller.NewAdvisoryController(advisoryService, authMiddleware),
		TranscribeController: controller.NewTranscribeController(transcribeService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
