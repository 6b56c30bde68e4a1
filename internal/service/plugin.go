package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Egor213/TerraTrack/internal/domain"
	"github.com/Egor213/TerraTrack/internal/metrics"
	"github.com/Egor213/TerraTrack/internal/repo"
	"github.com/Egor213/TerraTrack/internal/repo/repotypes"
	log "github.com/sirupsen/logrus"
)

type PluginService struct {
	logRepo  repo.Log
	client   PluginClient
	counters *metrics.Counters

	mu      sync.RWMutex
	plugins map[string]string
}

func NewPluginService(lr repo.Log, c PluginClient, cnt *metrics.Counters) *PluginService {
	return &PluginService{
		logRepo:  lr,
		client:   c,
		counters: cnt,
		plugins:  make(map[string]string),
	}
}

// Register adds or replaces the address of a named plugin.
func (s *PluginService) Register(name, address string) error {
	if name == "" || address == "" {
		return ErrInvalidPlugin
	}
	s.mu.Lock()
	s.plugins[name] = address
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"plugin":  name,
		"address": address,
	}).Info("Plugin registered")
	return nil
}

func (s *PluginService) List() []domain.PluginInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.PluginInfo, 0, len(s.plugins))
	for name, addr := range s.plugins {
		list = append(list, domain.PluginInfo{Name: name, Address: addr})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Process sends the logs selected by lf to the named plugin.
func (s *PluginService) Process(ctx context.Context, name string, lf repotypes.LogFilter, options map[string]string) (domain.PluginResult, error) {
	s.mu.RLock()
	address, ok := s.plugins[name]
	s.mu.RUnlock()
	if !ok {
		return domain.PluginResult{}, ErrPluginNotFound
	}

	stored, err := s.logRepo.GetLogs(ctx, lf)
	if err != nil {
		log.Debug(err)
		return domain.PluginResult{}, ErrCannotGetLogs
	}

	req := domain.PluginRequest{
		Logs:    make([]domain.PluginLog, 0, len(stored)),
		Options: options,
	}
	for _, l := range stored {
		req.Logs = append(req.Logs, toPluginLog(l))
	}

	res, err := s.client.ProcessLogs(ctx, address, req)
	if err != nil {
		s.counters.PluginCalls.Inc(name, "failed")
		log.WithFields(log.Fields{
			"plugin": name,
			"error":  err,
		}).Error("Plugin call failed")
		return domain.PluginResult{}, fmt.Errorf("%w: %s", ErrPluginFailed, err)
	}

	s.counters.PluginCalls.Inc(name, "ok")
	return res, nil
}

func toPluginLog(l domain.StoredLog) domain.PluginLog {
	raw := "{}"
	if len(l.RawData) > 0 {
		if b, err := json.Marshal(l.RawData); err == nil {
			raw = string(b)
		}
	}
	return domain.PluginLog{
		Level:        deref(l.Level),
		Timestamp:    deref(l.Timestamp),
		Message:      deref(l.Message),
		RequestID:    deref(l.RequestID),
		RPC:          deref(l.RPC),
		ResourceType: deref(l.ResourceType),
		RawJSON:      raw,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
