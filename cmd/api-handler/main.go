package main

import (
	"context"

	"github.com/SaiNageswarS/chatbot-api/appconfig"
	"github.com/SaiNageswarS/chatbot-api/db"
	"github.com/SaiNageswarS/chatbot-api/resolver"
	"github.com/SaiNageswarS/chatbot-api/sessions"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	dotenv.LoadEnv()

	cfg, err := appconfig.Load("config.ini")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	mongoClient, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	service := sessions.ProvideSessionService(
		sessions.NewMongoSessionStore(odm.CollectionOf[db.SessionModel](mongoClient, cfg.Tenant)),
		sessions.NewMongoApplicationStore(odm.CollectionOf[db.ApplicationModel](mongoClient, cfg.Tenant)),
	)

	lambda.Start(resolver.NewRouter(service).Handle)
}
