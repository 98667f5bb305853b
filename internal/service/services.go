package service

import (
	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/store"
)

type Services struct {
	TokenService    TokenService
	AuthService     AuthService
	TimelineService TimelineService
	PostService     PostService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokens := NewTokenService(cfg.App, logger)
	timeline := NewTimelineService(storages.PostRepository, cfg.Timeline, cfg.Storage.DB, logger)
	posts := NewPostValidationService().Wrap(
		NewPostService(storages.UserRepository, storages.PostRepository, timeline, cfg.Storage.DB, logger),
	)

	return &Services{
		TokenService:    tokens,
		AuthService:     NewAuthService(storages.UserRepository, tokens, logger),
		TimelineService: timeline,
		PostService:     posts,
		AppInfoService:  appInfo,
		HealthService:   NewHealthService(storages.Health, cfg.Storage.DB.QueryTimeout, logger),
	}, nil
}
