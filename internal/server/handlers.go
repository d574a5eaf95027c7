package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	authHttp "github.com/scripturecast/scripture-backend/internal/auth/delivery/http"
	authRepository "github.com/scripturecast/scripture-backend/internal/auth/repository"
	authUsecase "github.com/scripturecast/scripture-backend/internal/auth/usecase"
	bibleHttp "github.com/scripturecast/scripture-backend/internal/bible/delivery/http"
	bibleRepository "github.com/scripturecast/scripture-backend/internal/bible/repository"
	bibleUsecase "github.com/scripturecast/scripture-backend/internal/bible/usecase"
	chatHttp "github.com/scripturecast/scripture-backend/internal/chat/delivery/http"
	chatRepository "github.com/scripturecast/scripture-backend/internal/chat/repository"
	chatUsecase "github.com/scripturecast/scripture-backend/internal/chat/usecase"
	"github.com/scripturecast/scripture-backend/internal/middleware"
	progressHttp "github.com/scripturecast/scripture-backend/internal/progress/delivery/http"
	progressRepository "github.com/scripturecast/scripture-backend/internal/progress/repository"
	progressUsecase "github.com/scripturecast/scripture-backend/internal/progress/usecase"
	videoHttp "github.com/scripturecast/scripture-backend/internal/videos/delivery/http"
	videoProducer "github.com/scripturecast/scripture-backend/internal/videos/producer"
	videoRepository "github.com/scripturecast/scripture-backend/internal/videos/repository"
	videoSynthesizer "github.com/scripturecast/scripture-backend/internal/videos/synthesizer"
	videoUsecase "github.com/scripturecast/scripture-backend/internal/videos/usecase"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	aRepo := authRepository.NewAuthRepo(s.db)
	bRepo := bibleRepository.NewBibleRepo(s.db)
	cRepo := chatRepository.NewChatRepo(s.db)
	pRepo := progressRepository.NewProgressRepo(s.db)
	vRepo := videoRepository.NewVideoRepo(s.db)
	vRedisRepo := videoRepository.NewVideoRedisRepo(s.redisClient, s.cfg.Redis.VideoCachePrefix, s.cfg.Redis.VideoCacheSeconds)
	vAWSRepo := videoRepository.NewAwsRepository(s.s3Client, s.preSignClient, s.cfg.S3.VideoBucket)

	producer, err := videoProducer.NewVeoProducer(context.Background(), s.cfg, s.logger)
	if err != nil {
		return err
	}
	synthesizer := videoSynthesizer.NewOpenAISynthesizer(s.cfg, s.logger)
	poller := videoUsecase.NewPoller(
		vRepo,
		vRedisRepo,
		vAWSRepo,
		producer,
		time.Duration(s.cfg.Veo.PollIntervalSeconds)*time.Second,
		time.Duration(s.cfg.Veo.PollTimeoutSeconds)*time.Second,
		s.logger,
	)

	authUC := authUsecase.NewAuthUseCase(s.cfg, aRepo, s.logger)
	bibleUC := bibleUsecase.NewBibleUseCase(s.cfg, bRepo, s.logger)
	chatUC := chatUsecase.NewChatUseCase(s.cfg, cRepo, s.logger)
	progressUC := progressUsecase.NewProgressUseCase(s.cfg, pRepo, s.logger)
	videoUC := videoUsecase.NewChapterVideoUseCase(s.cfg, vRepo, vRedisRepo, vAWSRepo, bRepo, producer, synthesizer, poller, s.logger)

	authHandlers := authHttp.NewAuthHandler(s.cfg, authUC, s.logger)
	bibleHandlers := bibleHttp.NewBibleHandler(bibleUC)
	chatHandlers := chatHttp.NewChatHandler(s.cfg, chatUC, s.logger)
	progressHandlers := progressHttp.NewProgressHandler(s.cfg, progressUC, s.logger)
	videoHandlers := videoHttp.NewVideoHandler(videoUC)

	mw := middleware.NewMiddlewareManager(authUC, s.cfg, []string{"*"}, s.logger)
	e.Use(mw.RequestLoggerMiddleware)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	authGroup := v1.Group("/auth")
	bibleGroup := v1.Group("/bible")
	chatGroup := v1.Group("/chats")
	progressGroup := v1.Group("/progress")
	videoGroup := v1.Group("/videos")

	authHttp.MapAuthRoutes(authGroup, authHandlers, mw)
	bibleHttp.MapBibleRoutes(bibleGroup, bibleHandlers, mw)
	chatHttp.MapChatRoutes(chatGroup, chatHandlers, mw)
	progressHttp.MapProgressRoutes(progressGroup, progressHandlers, mw)
	videoHttp.MapVideoRoutes(videoGroup, videoHandlers)

	health.GET("", func(c echo.Context) error {
		s.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return nil
}
