package httpv1_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpv1 "github.com/Egor213/TerraTrack/internal/controller/http/v1"
	"github.com/Egor213/TerraTrack/internal/domain"
	servicemocks "github.com/Egor213/TerraTrack/internal/mocks/service"
	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
	"github.com/Egor213/TerraTrack/internal/service"
	"github.com/klauspost/compress/gzip"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const logText = `{"@level":"info","@message":"hello","@timestamp":"2024-05-01T10:00:00Z"}`

type mocks struct {
	log    *servicemocks.MockLog
	plugin *servicemocks.MockPlugin
}

func newTestServer(t *testing.T) (*echo.Echo, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		log:    servicemocks.NewMockLog(ctrl),
		plugin: servicemocks.NewMockPlugin(ctrl),
	}

	e := echo.New()
	httpv1.ConfigureRouter(e, &service.Services{Log: m.log, Plugin: m.plugin}, 1<<20)
	return e, m
}

func multipartRequest(t *testing.T, target, filename string, content []byte) *http.Request {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUpload(t *testing.T) {
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, _ = zw.Write([]byte(logText))
	require.NoError(t, zw.Close())

	testCases := []struct {
		name         string
		filename     string
		content      []byte
		mockBehavior func(m mocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:     "success",
			filename: "apply.json",
			content:  []byte(logText),
			mockBehavior: func(m mocks) {
				m.log.EXPECT().
					Upload(gomock.Any(), "apply.json", logText).
					Return(domain.UploadResult{UploadId: 4, Filename: "apply.json", EntriesCount: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"message":"File uploaded successfully","upload_id":4,"filename":"apply.json",
				"entries_count":1,"fixed_count":0}`,
		},
		{
			name:     "gzip compressed",
			filename: "apply.log.gz",
			content:  gz.Bytes(),
			mockBehavior: func(m mocks) {
				m.log.EXPECT().
					Upload(gomock.Any(), "apply.log.gz", logText).
					Return(domain.UploadResult{UploadId: 5, Filename: "apply.log.gz", EntriesCount: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "unsupported extension",
			filename:     "apply.txt",
			content:      []byte(logText),
			mockBehavior: func(m mocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "missing file",
			mockBehavior: func(m mocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:     "no records",
			filename: "apply.json",
			content:  []byte("nothing here"),
			mockBehavior: func(m mocks) {
				m.log.EXPECT().
					Upload(gomock.Any(), "apply.json", "nothing here").
					Return(domain.UploadResult{}, service.ErrNoRecords)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:     "duplicate",
			filename: "apply.json",
			content:  []byte(logText),
			mockBehavior: func(m mocks) {
				m.log.EXPECT().
					Upload(gomock.Any(), "apply.json", logText).
					Return(domain.UploadResult{}, service.ErrUploadAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:     "storage failure",
			filename: "apply.json",
			content:  []byte(logText),
			mockBehavior: func(m mocks) {
				m.log.EXPECT().
					Upload(gomock.Any(), "apply.json", logText).
					Return(domain.UploadResult{}, service.ErrCannotSaveUpload)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newTestServer(t)
			tc.mockBehavior(m)

			rec := serve(e, multipartRequest(t, "/api/upload", tc.filename, tc.content))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, m := newTestServer(t)
		m.log.EXPECT().Analyze("plan.json", logText).Return(domain.AnalyzedLog{
			Filename:  "plan.json",
			Logs:      []domain.Record{{"@message": "hello"}},
			Sections:  []domain.Section{},
			Timelines: []domain.RequestTimeline{},
			TotalLogs: 1,
		})

		rec := serve(e, multipartRequest(t, "/api/analyze", "plan.json", []byte(logText)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"filename":"plan.json","logs":[{"@message":"hello"}],"sections":[],
			"timelines":[],"total_logs":1,"fixed_count":0}`, rec.Body.String())
	})

	t.Run("empty result", func(t *testing.T) {
		e, m := newTestServer(t)
		m.log.EXPECT().Analyze("plan.json", "junk").Return(domain.AnalyzedLog{Filename: "plan.json"})

		rec := serve(e, multipartRequest(t, "/api/analyze", "plan.json", []byte("junk")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetLogs(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(m mocks)
		wantStatus   int
	}{
		{
			name:  "all filters",
			query: "?skip=5&limit=20&level=error&tf_resource_type=aws_s3_bucket&timestamp_from=A&timestamp_to=B&search_query=denied&upload_id=2",
			mockBehavior: func(m mocks) {
				m.log.EXPECT().GetLogs(gomock.Any(), repotypes.LogFilter{
					UploadId:      2,
					Level:         "error",
					ResourceType:  "aws_s3_bucket",
					TimestampFrom: "A",
					TimestampTo:   "B",
					Search:        "denied",
					Skip:          5,
					Limit:         20,
				}).Return([]domain.StoredLog{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "invalid level",
			query:        "?level=fatal",
			mockBehavior: func(m mocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "limit above maximum",
			query:        "?limit=1001",
			mockBehavior: func(m mocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "non numeric skip",
			query:        "?skip=abc",
			mockBehavior: func(m mocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:  "service error",
			query: "",
			mockBehavior: func(m mocks) {
				m.log.EXPECT().GetLogs(gomock.Any(), repotypes.LogFilter{}).Return(nil, service.ErrCannotGetLogs)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newTestServer(t)
			tc.mockBehavior(m)

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/logs"+tc.query, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestGetUploads(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(m mocks)
		wantStatus   int
	}{
		{
			name:  "default limit",
			query: "",
			mockBehavior: func(m mocks) {
				m.log.EXPECT().GetUploads(gomock.Any(), 0).Return([]domain.Upload{{Id: 1}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "explicit limit",
			query: "?limit=1000",
			mockBehavior: func(m mocks) {
				m.log.EXPECT().GetUploads(gomock.Any(), 1000).Return([]domain.Upload{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "limit above maximum",
			query:        "?limit=1001",
			mockBehavior: func(m mocks) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newTestServer(t)
			tc.mockBehavior(m)

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/uploads"+tc.query, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestGetSections(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		mockBehavior func(m mocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			path: "/api/uploads/3/sections",
			mockBehavior: func(m mocks) {
				m.log.EXPECT().GetSections(gomock.Any(), 3).Return([]domain.Section{{
					Kind:        domain.SectionApply,
					StartIndex:  1,
					EndIndex:    4,
					RecordCount: 4,
				}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"type":"apply","start_index":1,"end_index":4,"log_count":4}]`,
		},
		{
			name: "unknown upload",
			path: "/api/uploads/9/sections",
			mockBehavior: func(m mocks) {
				m.log.EXPECT().GetSections(gomock.Any(), 9).Return(nil, service.ErrUploadNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			path:         "/api/uploads/abc/sections",
			mockBehavior: func(m mocks) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newTestServer(t)
			tc.mockBehavior(m)

			rec := serve(e, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGetGantt(t *testing.T) {
	e, m := newTestServer(t)
	m.log.EXPECT().GetTimelines(gomock.Any(), 0).Return([]domain.RequestTimeline{{
		RequestID:      "req-1",
		RPC:            "ApplyResourceChange",
		StartTimestamp: "T1",
		EndTimestamp:   "T2",
		RecordCount:    2,
	}}, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/gantt", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"tf_req_id":"req-1","tf_rpc":"ApplyResourceChange",
		"start_timestamp":"T1","end_timestamp":"T2","log_count":2}]`, rec.Body.String())
}

func TestPlugins(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		e, m := newTestServer(t)
		m.plugin.EXPECT().List().Return([]domain.PluginInfo{{Name: "errors", Address: "localhost:50051"}})

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/plugins", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"name":"errors","address":"localhost:50051"}]`, rec.Body.String())
	})

	t.Run("register", func(t *testing.T) {
		e, m := newTestServer(t)
		m.plugin.EXPECT().Register("errors", "localhost:50051").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/plugins",
			strings.NewReader(`{"name":"errors","address":"localhost:50051"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := serve(e, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("register invalid", func(t *testing.T) {
		e, m := newTestServer(t)
		m.plugin.EXPECT().Register("", "").Return(service.ErrInvalidPlugin)

		req := httptest.NewRequest(http.MethodPost, "/api/plugins", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := serve(e, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("process", func(t *testing.T) {
		e, m := newTestServer(t)
		result := domain.PluginResult{
			Results: []domain.PluginItem{{Key: "error_type", Value: "boom", Count: 2, LogIds: []string{"a"}}},
			Summary: "Total errors: 2",
		}
		m.plugin.EXPECT().
			Process(gomock.Any(), "errors", repotypes.LogFilter{UploadId: 1}, map[string]string{"top": "3"}).
			Return(result, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/plugins/errors/process?upload_id=1",
			strings.NewReader(`{"options":{"top":"3"}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := serve(e, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.PluginResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, result, got)
	})

	t.Run("process failure", func(t *testing.T) {
		e, m := newTestServer(t)
		m.plugin.EXPECT().
			Process(gomock.Any(), "errors", repotypes.LogFilter{}, gomock.Nil()).
			Return(domain.PluginResult{}, service.ErrPluginFailed)

		rec := serve(e, httptest.NewRequest(http.MethodPost, "/api/plugins/errors/process", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
