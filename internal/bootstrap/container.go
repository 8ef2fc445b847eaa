package bootstrap

import (
	"log"

	"fin-advisor-be/internal/config"
	"fin-advisor-be/internal/controller"
	"fin-advisor-be/internal/pkg/logger"
	"fin-advisor-be/internal/repository/implementation"
	"fin-advisor-be/internal/repository/unitofwork"
	"fin-advisor-be/internal/service"
	"fin-advisor-be/pkg/embedding"
	"fin-advisor-be/pkg/llm/factory"
	pktNats "fin-advisor-be/pkg/nats"
	"fin-advisor-be/pkg/prompt"
	"fin-advisor-be/pkg/retrieval"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	UserController      controller.IUserController
	PortfolioController controller.IPortfolioController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiEndpoint,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 4. Retrieval Pipeline
	knowledgeRepo := implementation.NewKnowledgeRepository(db)
	retriever := retrieval.NewRetriever(knowledgeRepo, embeddingProvider, cfg.Ai.RetrievalTopK, sysLogger)
	assembler := prompt.NewAssembler()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	userService := service.NewUserService(uowFactory)
	portfolioService := service.NewPortfolioService(uowFactory)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, natsPub, sysLogger)
	chatService := service.NewChatService(
		uowFactory,
		retriever,
		assembler,
		llmProvider,
		natsPub,
		cfg.Ai.MaxDialogueRounds,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		UserController:      controller.NewUserController(userService),
		PortfolioController: controller.NewPortfolioController(portfolioService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),

		ConsumerService: consumerService,
	}
}
