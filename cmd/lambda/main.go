package main

import (
	"fmt"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hello-api-go/internal/config"
	"hello-api-go/internal/constants"
	apperrors "hello-api-go/internal/errors"
	"hello-api-go/internal/lambda"
	"hello-api-go/internal/server"
)

var handler *lambda.Handler

func init() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		panic(fmt.Sprintf("Failed to load Lambda config: %s", apperrors.AsAppError(err).Error()))
	}

	var logger *zap.Logger
	if cfg.LogLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
		gin.SetMode(gin.ReleaseMode)
	}

	handler = lambda.NewHandler(server.Build(cfg, logger), logger)

	logger.Info(fmt.Sprintf("%s Lambda handler initialized", constants.APIName()),
		zap.String("cors_profile", string(cfg.Profile)),
	)
}

func main() {
	awslambda.Start(handler.Handle)
}
