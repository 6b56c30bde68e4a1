package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
	Add(value float64, labels ...string)
}

type Counters struct {
	RecordsIngested Counter
	RecordsRepaired Counter
	Uploads         Counter
	PluginCalls     Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *PrometheusCounter {
	return &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := newCounterVec(name, help, labels)
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(value float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(value)
}

func New() *Counters {
	return newCounters(NewPrometheusCounter)
}

// NewTestCounters registers on a private registry so tests can build
// services repeatedly without duplicate registration panics.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()
	return newCounters(func(name, help string, labels []string) *PrometheusCounter {
		c := newCounterVec(name, help, labels)
		reg.MustRegister(c.counter)
		return c
	})
}

func newCounters(mk func(name, help string, labels []string) *PrometheusCounter) *Counters {
	return &Counters{
		RecordsIngested: mk(
			"tflog_records_ingested_total",
			"Number of log records stored, by level",
			[]string{"level"},
		),
		RecordsRepaired: mk(
			"tflog_records_repaired_total",
			"Number of records whose level or timestamp was backfilled",
			[]string{},
		),
		Uploads: mk(
			"tflog_uploads_total",
			"Number of upload attempts, by outcome",
			[]string{"status"},
		),
		PluginCalls: mk(
			"tflog_plugin_calls_total",
			"Number of plugin relay calls, by plugin and outcome",
			[]string{"plugin", "status"},
		),
	}
}
