package pgdb

import (
	"context"
	"errors"

	"github.com/Egor213/TerraTrack/internal/domain"
	"github.com/Egor213/TerraTrack/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/TerraTrack/pkg/errors"
	"github.com/Egor213/TerraTrack/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var uploadColumns = []string{"id", "filename", "checksum", "total_records", "fixed_records", "uploaded_at"}

type UploadRepo struct {
	*postgres.Postgres
}

func NewUploadRepo(pg *postgres.Postgres) *UploadRepo {
	return &UploadRepo{pg}
}

func (r *UploadRepo) CreateUpload(ctx context.Context, upload *domain.Upload) (int, error) {
	sql, args, err := r.Builder.
		Insert("uploads").
		Columns("filename", "checksum", "total_records", "fixed_records").
		Values(upload.Filename, upload.Checksum, upload.TotalRecords, upload.FixedRecords).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var id int
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return 0, repoerrs.ErrAlreadyExists
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *UploadRepo) GetUpload(ctx context.Context, id int) (domain.Upload, error) {
	sql, args, err := r.Builder.
		Select(uploadColumns...).
		From("uploads").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Upload{}, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return domain.Upload{}, errorsUtils.WrapPathErr(err)
	}

	upload, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.Upload])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Upload{}, repoerrs.ErrNotFound
		}
		return domain.Upload{}, errorsUtils.WrapPathErr(err)
	}
	return upload, nil
}

func (r *UploadRepo) ListUploads(ctx context.Context, limit int) ([]domain.Upload, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	sql, args, err := r.Builder.
		Select(uploadColumns...).
		From("uploads").
		OrderBy("uploaded_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	uploads, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Upload])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return uploads, nil
}
