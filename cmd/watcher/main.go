package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scripturecast/scripture-backend/internal/config"
	videoProducer "github.com/scripturecast/scripture-backend/internal/videos/producer"
	videoRepository "github.com/scripturecast/scripture-backend/internal/videos/repository"
	videoUsecase "github.com/scripturecast/scripture-backend/internal/videos/usecase"
	"github.com/scripturecast/scripture-backend/internal/watcher"
	"github.com/scripturecast/scripture-backend/pkg/db/aws"
	"github.com/scripturecast/scripture-backend/pkg/db/postgres"
	"github.com/scripturecast/scripture-backend/pkg/db/redis"
	"github.com/scripturecast/scripture-backend/pkg/logger"
)

func main() {
	log.Println("Starting watcher")
	configFile := "config.yml"
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}
	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s", cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode)

	psqlDB, err := postgres.NewPsqlDB(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to db: %s", err)
	}
	appLogger.Infof("db connected, status: %#v", psqlDB.Stats())
	defer psqlDB.Close()

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	appLogger.Infof("redis connected")
	defer redisClient.Close()

	s3Client, presignClient, err := aws.NewAWSClient(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		appLogger.Infof("could not connect to s3: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vRepo := videoRepository.NewVideoRepo(psqlDB)
	vRedisRepo := videoRepository.NewVideoRedisRepo(redisClient, cfg.Redis.VideoCachePrefix, cfg.Redis.VideoCacheSeconds)
	vAWSRepo := videoRepository.NewAwsRepository(s3Client, presignClient, cfg.S3.VideoBucket)

	producer, err := videoProducer.NewVeoProducer(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatalf("could not create video producer: %s", err)
	}
	poller := videoUsecase.NewPoller(
		vRepo,
		vRedisRepo,
		vAWSRepo,
		producer,
		time.Duration(cfg.Veo.PollIntervalSeconds)*time.Second,
		time.Duration(cfg.Veo.PollTimeoutSeconds)*time.Second,
		appLogger,
	)

	w := watcher.NewWatcher(cfg, vRepo, poller, appLogger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
		<-quit
		cancel()
	}()

	if err = w.Run(ctx); err != nil && err != context.Canceled {
		appLogger.Errorf("watcher stopped with error: %s", err)
	}
}
