package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Egor213/TerraTrack/internal/domain"
	"github.com/Egor213/TerraTrack/internal/metrics"
	brokermocks "github.com/Egor213/TerraTrack/internal/mocks/broker"
	countermocks "github.com/Egor213/TerraTrack/internal/mocks/counters"
	repository_mock "github.com/Egor213/TerraTrack/internal/mocks/repository"
	servicemocks "github.com/Egor213/TerraTrack/internal/mocks/service"
	"github.com/Egor213/TerraTrack/internal/repo/repoerrs"
	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
	"github.com/Egor213/TerraTrack/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uploadText = `{"@level":"info","@message":"starting","@timestamp":"2024-05-01T10:00:00Z"}
{"@message":"Error: provider crashed"}`

type logMocks struct {
	logRepo    *repository_mock.MockLog
	uploadRepo *repository_mock.MockUpload
	tr         *servicemocks.MockTransactor
	producer   *brokermocks.MockProducer
}

func newLogMocks(ctrl *gomock.Controller) logMocks {
	return logMocks{
		logRepo:    repository_mock.NewMockLog(ctrl),
		uploadRepo: repository_mock.NewMockUpload(ctrl),
		tr:         servicemocks.NewMockTransactor(ctrl),
		producer:   brokermocks.NewMockProducer(ctrl),
	}
}

func (m logMocks) service(cnt *metrics.Counters) *service.LogService {
	return service.NewLogService(m.logRepo, m.uploadRepo, m.tr, cnt, m.producer)
}

func runInTx(m logMocks) {
	m.tr.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestLogService_Upload(t *testing.T) {
	type mockBehavior func(m logMocks)

	testCases := []struct {
		name         string
		text         string
		mockBehavior mockBehavior
		want         domain.UploadResult
		wantErr      error
	}{
		{
			name: "success",
			text: uploadText,
			mockBehavior: func(m logMocks) {
				runInTx(m)
				m.uploadRepo.EXPECT().
					CreateUpload(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.Upload) (int, error) {
						assert.Equal(t, "apply.json", u.Filename)
						assert.Equal(t, 2, u.TotalRecords)
						assert.Equal(t, 1, u.FixedRecords)
						assert.Len(t, u.Checksum, 64)
						return 7, nil
					})
				m.logRepo.EXPECT().
					SaveRecords(gomock.Any(), 7, gomock.Len(2)).
					Return(2, nil)
				m.producer.EXPECT().
					SendMessage(gomock.Any(), []byte("7"), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, value []byte) error {
						var ev domain.UploadEvent
						require.NoError(t, json.Unmarshal(value, &ev))
						assert.Equal(t, 7, ev.UploadId)
						assert.NotEmpty(t, ev.EventId)
						assert.Equal(t, map[string]int{"info": 1, "error": 1}, ev.Levels)
						return nil
					})
			},
			want: domain.UploadResult{
				UploadId:     7,
				Filename:     "apply.json",
				EntriesCount: 2,
				FixedCount:   1,
			},
		},
		{
			name: "publish failure does not fail upload",
			text: uploadText,
			mockBehavior: func(m logMocks) {
				runInTx(m)
				m.uploadRepo.EXPECT().CreateUpload(gomock.Any(), gomock.Any()).Return(3, nil)
				m.logRepo.EXPECT().SaveRecords(gomock.Any(), 3, gomock.Any()).Return(2, nil)
				m.producer.EXPECT().
					SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))
			},
			want: domain.UploadResult{
				UploadId:     3,
				Filename:     "apply.json",
				EntriesCount: 2,
				FixedCount:   1,
			},
		},
		{
			name:         "no records",
			text:         "plain text\nnot json",
			mockBehavior: func(m logMocks) {},
			wantErr:      service.ErrNoRecords,
		},
		{
			name: "duplicate upload",
			text: uploadText,
			mockBehavior: func(m logMocks) {
				runInTx(m)
				m.uploadRepo.EXPECT().
					CreateUpload(gomock.Any(), gomock.Any()).
					Return(0, repoerrs.ErrAlreadyExists)
			},
			wantErr: service.ErrUploadAlreadyExists,
		},
		{
			name: "save records error",
			text: uploadText,
			mockBehavior: func(m logMocks) {
				runInTx(m)
				m.uploadRepo.EXPECT().CreateUpload(gomock.Any(), gomock.Any()).Return(5, nil)
				m.logRepo.EXPECT().
					SaveRecords(gomock.Any(), 5, gomock.Any()).
					Return(0, errors.New("db error"))
			},
			wantErr: service.ErrCannotSaveUpload,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newLogMocks(ctrl)
			tc.mockBehavior(m)

			s := m.service(metrics.NewTestCounters())
			got, err := s.Upload(context.Background(), "apply.json", tc.text)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogService_UploadCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newLogMocks(ctrl)
	runInTx(m)
	m.uploadRepo.EXPECT().CreateUpload(gomock.Any(), gomock.Any()).Return(1, nil)
	m.logRepo.EXPECT().SaveRecords(gomock.Any(), 1, gomock.Any()).Return(2, nil)
	m.producer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	ingested := countermocks.NewMockCounter(ctrl)
	repaired := countermocks.NewMockCounter(ctrl)
	uploads := countermocks.NewMockCounter(ctrl)
	ingested.EXPECT().Add(1.0, "info")
	ingested.EXPECT().Add(1.0, "error")
	repaired.EXPECT().Add(1.0)
	uploads.EXPECT().Inc("ok")

	cnt := &metrics.Counters{
		RecordsIngested: ingested,
		RecordsRepaired: repaired,
		Uploads:         uploads,
		PluginCalls:     countermocks.NewMockCounter(ctrl),
	}

	_, err := m.service(cnt).Upload(context.Background(), "apply.json", uploadText)
	assert.NoError(t, err)
}

func TestLogService_GetLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newLogMocks(ctrl)
	s := m.service(metrics.NewTestCounters())

	ctx := context.Background()
	filter := repotypes.LogFilter{Level: "error", Limit: 10}
	level := "error"
	logs := []domain.StoredLog{{Id: 1, UploadId: 2, Level: &level}}

	tcs := []struct {
		name         string
		mockBehavior func()
		want         []domain.StoredLog
		wantErr      bool
	}{
		{
			name: "success",
			mockBehavior: func() {
				m.logRepo.EXPECT().GetLogs(ctx, filter).Return(logs, nil)
			},
			want: logs,
		},
		{
			name: "repository error",
			mockBehavior: func() {
				m.logRepo.EXPECT().GetLogs(ctx, filter).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockBehavior()

			got, err := s.GetLogs(ctx, filter)
			if tc.wantErr {
				assert.ErrorIs(t, err, service.ErrCannotGetLogs)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogService_GetSections(t *testing.T) {
	records := []domain.Record{
		{"@message": "backend/local: starting Plan operation", "@timestamp": "T1"},
		{"@message": "refreshing", "@timestamp": "T2"},
		{"@message": "Plan: 1 to add", "type": "change_summary", "@timestamp": "T3"},
	}

	testCases := []struct {
		name         string
		uploadId     int
		mockBehavior func(m logMocks)
		want         []domain.Section
		wantErr      error
	}{
		{
			name:     "success",
			uploadId: 4,
			mockBehavior: func(m logMocks) {
				m.uploadRepo.EXPECT().GetUpload(gomock.Any(), 4).Return(domain.Upload{Id: 4}, nil)
				m.logRepo.EXPECT().GetRecords(gomock.Any(), 4).Return(records, nil)
			},
			want: []domain.Section{{
				Kind:           domain.SectionPlan,
				StartIndex:     0,
				EndIndex:       2,
				RecordCount:    3,
				StartTimestamp: "T1",
				EndTimestamp:   "T3",
			}},
		},
		{
			name:     "unknown upload",
			uploadId: 9,
			mockBehavior: func(m logMocks) {
				m.uploadRepo.EXPECT().GetUpload(gomock.Any(), 9).Return(domain.Upload{}, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrUploadNotFound,
		},
		{
			name:     "records error",
			uploadId: 4,
			mockBehavior: func(m logMocks) {
				m.uploadRepo.EXPECT().GetUpload(gomock.Any(), 4).Return(domain.Upload{Id: 4}, nil)
				m.logRepo.EXPECT().GetRecords(gomock.Any(), 4).Return(nil, errors.New("db error"))
			},
			wantErr: service.ErrCannotGetLogs,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newLogMocks(ctrl)
			tc.mockBehavior(m)

			got, err := m.service(metrics.NewTestCounters()).GetSections(context.Background(), tc.uploadId)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogService_GetTimelinesAllUploads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newLogMocks(ctrl)
	m.logRepo.EXPECT().GetRecords(gomock.Any(), 0).Return([]domain.Record{
		{"tf_req_id": "b", "@timestamp": "T2"},
		{"tf_req_id": "a", "@timestamp": "T1", "tf_rpc": "PlanResourceChange"},
		{"tf_req_id": "b", "@timestamp": "T3"},
	}, nil)

	got, err := m.service(metrics.NewTestCounters()).GetTimelines(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.RequestTimeline{
		{RequestID: "a", RPC: "PlanResourceChange", StartTimestamp: "T1", EndTimestamp: "T1", RecordCount: 1},
		{RequestID: "b", StartTimestamp: "T2", EndTimestamp: "T3", RecordCount: 2},
	}, got)
}

func TestLogService_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	got := newLogMocks(ctrl).service(metrics.NewTestCounters()).Analyze("apply.json", uploadText)

	assert.Equal(t, "apply.json", got.Filename)
	assert.Equal(t, 2, got.TotalLogs)
	assert.Equal(t, 1, got.FixedCount)
	assert.Equal(t, "error", got.Logs[1].Level())
	assert.Equal(t, "2024-05-01T10:00:00Z", got.Logs[1].Timestamp())
}
