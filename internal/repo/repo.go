package repo

import (
	"context"

	"github.com/Egor213/TerraTrack/internal/domain"
	"github.com/Egor213/TerraTrack/internal/repo/pgdb"
	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
	"github.com/Egor213/TerraTrack/pkg/postgres"
)

type Log interface {
	SaveRecords(ctx context.Context, uploadId int, records []domain.Record) (int, error)
	GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.StoredLog, error)
	GetRecords(ctx context.Context, uploadId int) ([]domain.Record, error)
}

type Upload interface {
	CreateUpload(ctx context.Context, upload *domain.Upload) (int, error)
	GetUpload(ctx context.Context, id int) (domain.Upload, error)
	ListUploads(ctx context.Context, limit int) ([]domain.Upload, error)
}

type Repositories struct {
	Log
	Upload
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log:    pgdb.NewLogRepo(pg),
		Upload: pgdb.NewUploadRepo(pg),
	}
}
