package pgdb

import (
	"context"

	"github.com/Egor213/TerraTrack/internal/domain"
	"github.com/Egor213/TerraTrack/internal/repo/repoerrs"
	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/TerraTrack/pkg/errors"
	"github.com/Egor213/TerraTrack/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// insertBatchSize keeps a single INSERT well under the 65535 bind parameter
// limit (9 columns per row).
const insertBatchSize = 1000

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) SaveRecords(ctx context.Context, uploadId int, records []domain.Record) (int, error) {
	saved := 0
	for start := 0; start < len(records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(records))

		query := r.Builder.
			Insert("log_records").
			Columns("upload_id", "seq", "level", "timestamp", "message",
				"tf_req_id", "tf_rpc", "tf_resource_type", "raw_data")

		for i, rec := range records[start:end] {
			query = query.Values(
				uploadId,
				start+i,
				nullable(rec.Level()),
				nullable(rec.Timestamp()),
				nullable(rec.Message()),
				nullable(rec.RequestID()),
				nullable(rec.RPC()),
				nullable(rec.ResourceType()),
				map[string]any(rec),
			)
		}

		sql, args, err := query.ToSql()
		if err != nil {
			return saved, errorsUtils.WrapPathErr(err)
		}

		tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
		if err != nil {
			return saved, insertRecordsErr(err)
		}
		saved += int(tag.RowsAffected())
	}
	return saved, nil
}

// insertRecordsErr maps a missing parent upload to repoerrs.ErrNotFound.
func insertRecordsErr(err error) error {
	if errorsUtils.IsForeignKeyViolation(err) {
		return repoerrs.ErrNotFound
	}
	return errorsUtils.WrapPathErr(err)
}

func (r *LogRepo) GetLogs(ctx context.Context, filter repotypes.LogFilter) ([]domain.StoredLog, error) {
	conds, limit, offset := BuildLogQueryFilters(filter)

	query := r.Builder.
		Select("r.id", "r.upload_id", "u.filename", "u.uploaded_at", "r.level", "r.timestamp",
			"r.message", "r.tf_req_id", "r.tf_rpc", "r.tf_resource_type", "r.raw_data").
		From("log_records r").
		Join("uploads u ON u.id = r.upload_id").
		OrderBy("u.uploaded_at DESC", "r.upload_id DESC", "r.seq").
		Limit(limit).
		Offset(offset)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.StoredLog])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return logs, nil
}

// GetRecords returns the raw records of one upload in their original order,
// or of every upload when uploadId is zero.
func (r *LogRepo) GetRecords(ctx context.Context, uploadId int) ([]domain.Record, error) {
	query := r.Builder.
		Select("raw_data").
		From("log_records").
		OrderBy("upload_id", "seq")

	if uploadId > 0 {
		query = query.Where(sq.Eq{"upload_id": uploadId})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowTo[domain.Record])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return records, nil
}
