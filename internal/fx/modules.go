package fx

import (
	"league-tracker/internal/config"
	"league-tracker/internal/database"
	"league-tracker/internal/logger"
	"league-tracker/internal/region"
	"league-tracker/internal/repository"
	"league-tracker/internal/riot"
	"league-tracker/internal/server"
	"league-tracker/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideHistoryService(repo *repository.LookupRepository, log zerolog.Logger) *service.HistoryService {
	return service.NewHistoryService(repo, log)
}

func ProvideProfileService(client *riot.Client, history *service.HistoryService, cfg *config.Config, log zerolog.Logger) *service.ProfileService {
	// run the configured tag through the resolver so a bogus value still
	// lands on a real shard
	return service.NewProfileService(client, history, region.Resolve(cfg.DefaultRegion), log)
}

func ProvideMatchService(client *riot.Client, log zerolog.Logger) *service.MatchService {
	return service.NewMatchService(client, log)
}

func ProvideServer(profileSvc *service.ProfileService, matchSvc *service.MatchService, historySvc *service.HistoryService, cfg *config.Config, log zerolog.Logger) *server.Server {
	return server.New(profileSvc, matchSvc, historySvc, region.Resolve(cfg.DefaultRegion), log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewLookupRepository),
	// api client
	fx.Provide(riot.NewClient),
	// svc
	fx.Provide(ProvideHistoryService),
	fx.Provide(ProvideProfileService),
	fx.Provide(ProvideMatchService),
	// server
	fx.Provide(ProvideServer),
)
