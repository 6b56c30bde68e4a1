package pgdb

import (
	"strings"

	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

const (
	DefaultLimit = repotypes.DefaultLimit
	MaxLimit     = repotypes.MaxLimit
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func BuildLogQueryFilters(filter repotypes.LogFilter) ([]sq.Sqlizer, uint64, uint64) {
	conds := []sq.Sqlizer{}

	if filter.UploadId > 0 {
		conds = append(conds, sq.Eq{"r.upload_id": filter.UploadId})
	}
	if filter.Level != "" {
		conds = append(conds, sq.Eq{"r.level": filter.Level})
	}
	if filter.ResourceType != "" {
		conds = append(conds, sq.Eq{"r.tf_resource_type": filter.ResourceType})
	}
	if filter.TimestampFrom != "" {
		conds = append(conds, sq.GtOrEq{"r.timestamp": filter.TimestampFrom})
	}
	if filter.TimestampTo != "" {
		conds = append(conds, sq.LtOrEq{"r.timestamp": filter.TimestampTo})
	}
	if filter.Search != "" {
		conds = append(conds, sq.ILike{"r.message": "%" + likeEscaper.Replace(filter.Search) + "%"})
	}

	limit := uint64(DefaultLimit)
	if filter.Limit > 0 {
		limit = uint64(min(filter.Limit, MaxLimit))
	}

	offset := uint64(0)
	if filter.Skip > 0 {
		offset = uint64(filter.Skip)
	}

	return conds, limit, offset
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
