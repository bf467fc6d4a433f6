package tfidf

import (
	"log/slog"
	"time"
)

// Recorder receives instrumentation events from a Model. Implementations
// must be safe for concurrent use. The zero configuration discards all
// events; pkg/metrics provides a Prometheus-backed implementation.
type Recorder interface {
	DocAdded(totalTerms int)
	DocRemoved()
	SearchCompleted(queryTerms, results int, elapsed time.Duration)
}

type settings struct {
	logger *slog.Logger
	rec    Recorder
}

// Option configures a Model at construction time.
type Option func(*settings)

// WithLogger sets the logger used for debug output on the mutation and
// scoring paths. Defaults to slog.Default() scoped to the tfidf component.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithRecorder attaches an instrumentation Recorder to the model.
func WithRecorder(rec Recorder) Option {
	return func(s *settings) {
		s.rec = rec
	}
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger: slog.Default().With("component", "tfidf"),
		rec:    nopRecorder{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default().With("component", "tfidf")
	}
	if s.rec == nil {
		s.rec = nopRecorder{}
	}
	return s
}

type nopRecorder struct{}

func (nopRecorder) DocAdded(int)                            {}
func (nopRecorder) DocRemoved()                             {}
func (nopRecorder) SearchCompleted(int, int, time.Duration) {}
