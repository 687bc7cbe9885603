package main

import (
	"context"

	"github.com/SaiNageswarS/chatbot-api/appconfig"
	"github.com/SaiNageswarS/chatbot-api/groupsync"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"go.uber.org/zap"
)

func main() {
	dotenv.LoadEnv()

	cfg, err := appconfig.Load("config.ini")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal("Failed to load AWS config", zap.Error(err))
	}

	directory := groupsync.NewCognitoDirectory(cognitoidentityprovider.NewFromConfig(awsCfg))
	hook := groupsync.NewHook(directory, cfg.SecurityGroupID, cfg.TargetGroupName)

	lambda.Start(hook.Handle)
}
