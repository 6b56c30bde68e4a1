package service

import (
	"context"

	"github.com/Egor213/TerraTrack/internal/broker"
	"github.com/Egor213/TerraTrack/internal/domain"
	"github.com/Egor213/TerraTrack/internal/metrics"
	"github.com/Egor213/TerraTrack/internal/repo"
	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
)

type Log interface {
	Upload(ctx context.Context, filename, text string) (domain.UploadResult, error)
	Analyze(filename, text string) domain.AnalyzedLog
	GetLogs(ctx context.Context, lf repotypes.LogFilter) ([]domain.StoredLog, error)
	GetUploads(ctx context.Context, limit int) ([]domain.Upload, error)
	GetSections(ctx context.Context, uploadId int) ([]domain.Section, error)
	GetTimelines(ctx context.Context, uploadId int) ([]domain.RequestTimeline, error)
}

type Plugin interface {
	Register(name, address string) error
	List() []domain.PluginInfo
	Process(ctx context.Context, name string, lf repotypes.LogFilter, options map[string]string) (domain.PluginResult, error)
}

// Transactor runs fn in one database transaction carried by ctx.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type PluginClient interface {
	ProcessLogs(ctx context.Context, address string, req domain.PluginRequest) (domain.PluginResult, error)
}

type Services struct {
	Log
	Plugin
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Transactor     Transactor
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	PluginClient   PluginClient
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Log:    NewLogService(deps.Repos.Log, deps.Repos.Upload, deps.Transactor, deps.Counters, deps.BrokerProducer),
		Plugin: NewPluginService(deps.Repos.Log, deps.PluginClient, deps.Counters),
	}
}
