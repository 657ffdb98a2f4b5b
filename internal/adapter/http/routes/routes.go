package routes

import (
	"os"

	_ "wiz_adquote/docs" // This will be auto-generated
	"wiz_adquote/internal/adapter/http/handlers"
	"wiz_adquote/internal/adapter/persistence/repository"
	"wiz_adquote/internal/infrastructure/database"
	"wiz_adquote/internal/infrastructure/delivery"
	"wiz_adquote/internal/infrastructure/logging"
	"wiz_adquote/internal/infrastructure/pdf"
	"wiz_adquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	log := logging.NewLogger()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(log zerolog.Logger) {
	ddb := database.ConnectDynamoDB(log)
	artifactRepo := repository.NewArtifactDynamoRepository(ddb, log)

	generator := pdf.NewGenerator(log)

	// Either delivery channel may be unconfigured; the gateway reports that
	// per channel instead of the server refusing to start.
	var email delivery.EmailSender
	if smtpSender, err := delivery.NewSMTPSenderFromEnv(log); err != nil {
		log.Warn().Err(err).Msg("email sender not configured")
	} else {
		email = smtpSender
	}

	var alimtalk delivery.MessageSender
	if alimtalkSender, err := delivery.NewAlimtalkSenderFromEnv(log); err != nil {
		log.Warn().Err(err).Msg("alimtalk sender not configured")
	} else {
		alimtalk = alimtalkSender
	}

	gateway := delivery.NewGateway(email, alimtalk, log)

	workflow := usecase.NewWorkflowUseCase(generator, gateway, artifactRepo, log)
	quoteHandler := handlers.NewQuoteHandler(workflow, artifactRepo)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
}

func setMiddlewares(log zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
