// Command tfidf-demo loads a pre-tokenized corpus from a YAML file,
// indexes it, and prints ranked results for each query in the corpus
// file. It exists to illustrate the library API end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tfidf "github.com/t4skmanag3r/go-tfidf"
	"github.com/t4skmanag3r/go-tfidf/pkg/config"
	"github.com/t4skmanag3r/go-tfidf/pkg/corpus"
	"github.com/t4skmanag3r/go-tfidf/pkg/logger"
	"github.com/t4skmanag3r/go-tfidf/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	opts := []tfidf.Option{
		tfidf.WithLogger(logger.WithComponent("tfidf")),
	}
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		opts = append(opts, tfidf.WithRecorder(m))
		shutdown := metrics.StartServer(cfg.Metrics.Port)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				slog.Error("metrics server shutdown failed", "error", err)
			}
		}()
	}

	c, err := corpus.Load(cfg.Demo.CorpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load corpus: %v\n", err)
		os.Exit(1)
	}

	model := tfidf.FromCollection(c.Documents, opts...)
	slog.Info("corpus indexed",
		"documents", model.DocCount(),
		"distinct_terms", model.TermCount(),
	)
	if m != nil {
		m.SetModelSize(model.DocCount(), model.TermCount())
	}

	queries := c.Queries
	if len(queries) == 0 {
		slog.Warn("corpus file defines no queries, nothing to search")
	}

	cache := tfidf.NewQueryCache(model)
	for _, query := range queries {
		results := cache.Search(query)
		fmt.Printf("query %v\n", query)
		for _, r := range results {
			fmt.Printf("  %-20s %.6f\n", r.DocID, r.Score)
		}
	}

	hits, misses := cache.Stats()
	slog.Info("demo finished", "cache_hits", hits, "cache_misses", misses)
}
