package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/Egor213/TerraTrack/internal/broker"
	"github.com/Egor213/TerraTrack/internal/domain"
	"github.com/Egor213/TerraTrack/internal/metrics"
	"github.com/Egor213/TerraTrack/internal/repo"
	"github.com/Egor213/TerraTrack/internal/repo/repoerrs"
	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
	"github.com/Egor213/TerraTrack/internal/tflog"
	errorsUtils "github.com/Egor213/TerraTrack/pkg/errors"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const unknownLevel = "unknown"

type LogService struct {
	logRepo        repo.Log
	uploadRepo     repo.Upload
	trManager      Transactor
	counters       *metrics.Counters
	brokerProducer broker.Producer
}

func NewLogService(lr repo.Log, ur repo.Upload, tr Transactor, cnt *metrics.Counters, p broker.Producer) *LogService {
	return &LogService{
		logRepo:        lr,
		uploadRepo:     ur,
		trManager:      tr,
		counters:       cnt,
		brokerProducer: p,
	}
}

// Upload ingests and repairs text, then stores the upload and its records
// in one transaction. Identical content is rejected as a duplicate.
func (s *LogService) Upload(ctx context.Context, filename, text string) (domain.UploadResult, error) {
	records := tflog.Ingest(text)
	if len(records) == 0 {
		s.counters.Uploads.Inc("empty")
		return domain.UploadResult{}, ErrNoRecords
	}
	records, fixed := tflog.Repair(records)

	sum := sha256.Sum256([]byte(text))
	upload := &domain.Upload{
		Filename:     filename,
		Checksum:     hex.EncodeToString(sum[:]),
		TotalRecords: len(records),
		FixedRecords: fixed,
	}

	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.uploadRepo.CreateUpload(ctx, upload)
		if err != nil {
			return err
		}
		upload.Id = id
		_, err = s.logRepo.SaveRecords(ctx, id, records)
		return err
	})
	if err != nil {
		if errors.Is(err, repoerrs.ErrAlreadyExists) {
			s.counters.Uploads.Inc("duplicate")
			return domain.UploadResult{}, ErrUploadAlreadyExists
		}
		s.counters.Uploads.Inc("failed")
		log.WithField("filename", filename).Error(err)
		return domain.UploadResult{}, errorsUtils.WrapPathErr(ErrCannotSaveUpload)
	}

	levels := levelHistogram(records)
	for level, n := range levels {
		s.counters.RecordsIngested.Add(float64(n), level)
	}
	s.counters.RecordsRepaired.Add(float64(fixed))
	s.counters.Uploads.Inc("ok")

	s.publish(ctx, domain.UploadEvent{
		EventId:      uuid.NewString(),
		UploadId:     upload.Id,
		Filename:     filename,
		TotalRecords: upload.TotalRecords,
		FixedRecords: fixed,
		Levels:       levels,
		CreatedAt:    time.Now().UTC(),
	})

	return domain.UploadResult{
		UploadId:     upload.Id,
		Filename:     filename,
		EntriesCount: upload.TotalRecords,
		FixedCount:   fixed,
	}, nil
}

// publish is best effort: the upload is already committed.
func (s *LogService) publish(ctx context.Context, event domain.UploadEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		log.Errorf("Failed to encode upload event: %v", err)
		return
	}
	if err := s.brokerProducer.SendMessage(ctx, []byte(strconv.Itoa(event.UploadId)), value); err != nil {
		log.WithField("upload_id", event.UploadId).Warnf("Upload event not published: %v", err)
	}
}

func (s *LogService) Analyze(filename, text string) domain.AnalyzedLog {
	return tflog.Analyze(filename, text)
}

func (s *LogService) GetLogs(ctx context.Context, lf repotypes.LogFilter) ([]domain.StoredLog, error) {
	logs, err := s.logRepo.GetLogs(ctx, lf)
	if err != nil {
		log.Debug(err)
		return nil, errorsUtils.WrapPathErr(ErrCannotGetLogs)
	}
	return logs, nil
}

func (s *LogService) GetUploads(ctx context.Context, limit int) ([]domain.Upload, error) {
	uploads, err := s.uploadRepo.ListUploads(ctx, limit)
	if err != nil {
		log.Debug(err)
		return nil, errorsUtils.WrapPathErr(ErrCannotGetLogs)
	}
	return uploads, nil
}

func (s *LogService) GetSections(ctx context.Context, uploadId int) ([]domain.Section, error) {
	records, err := s.uploadRecords(ctx, uploadId)
	if err != nil {
		return nil, err
	}
	return tflog.Segment(records), nil
}

// GetTimelines aggregates one upload, or every stored record when
// uploadId is zero.
func (s *LogService) GetTimelines(ctx context.Context, uploadId int) ([]domain.RequestTimeline, error) {
	records, err := s.uploadRecords(ctx, uploadId)
	if err != nil {
		return nil, err
	}
	return tflog.Aggregate(records), nil
}

func (s *LogService) uploadRecords(ctx context.Context, uploadId int) ([]domain.Record, error) {
	if uploadId > 0 {
		if _, err := s.uploadRepo.GetUpload(ctx, uploadId); err != nil {
			if errors.Is(err, repoerrs.ErrNotFound) {
				return nil, ErrUploadNotFound
			}
			log.Debug(err)
			return nil, errorsUtils.WrapPathErr(ErrCannotGetLogs)
		}
	}

	records, err := s.logRepo.GetRecords(ctx, uploadId)
	if err != nil {
		log.Debug(err)
		return nil, errorsUtils.WrapPathErr(ErrCannotGetLogs)
	}
	return records, nil
}

func levelHistogram(records []domain.Record) map[string]int {
	levels := make(map[string]int)
	for _, rec := range records {
		level := rec.Level()
		if level == "" {
			level = unknownLevel
		}
		levels[level]++
	}
	return levels
}
