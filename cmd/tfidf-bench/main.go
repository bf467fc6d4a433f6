// Command tfidf-bench generates a synthetic corpus, indexes it
// concurrently, and drives sustained query load against the model,
// reporting throughput and latency percentiles.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	tfidf "github.com/t4skmanag3r/go-tfidf"
)

var vocabulary = []string{
	"distributed", "search", "analytics", "platform", "indexing",
	"query", "engine", "ranking", "relevance", "document", "term",
	"frequency", "inverse", "corpus", "token", "retrieval", "score",
	"apple", "banana", "orange", "tomato", "cucumber", "radish",
	"tagliatelle", "rotini", "rigatoni", "cache", "merge", "model",
}

type Config struct {
	Docs        int
	DocLength   int
	QueryTerms  int
	Concurrency int
	Duration    time.Duration
	Cached      bool
}

type Stats struct {
	searches    atomic.Int64
	latencies   []time.Duration
	latenciesMu sync.Mutex
}

func (s *Stats) Record(d time.Duration) {
	s.searches.Add(1)
	s.latenciesMu.Lock()
	s.latencies = append(s.latencies, d)
	s.latenciesMu.Unlock()
}

func main() {
	docs := flag.Int("docs", 10000, "number of synthetic documents to index")
	docLength := flag.Int("doc-length", 50, "terms per synthetic document")
	queryTerms := flag.Int("query-terms", 3, "terms per query")
	concurrency := flag.Int("concurrency", runtime.NumCPU(), "number of concurrent query workers")
	duration := flag.Duration("duration", 10*time.Second, "query phase duration")
	cached := flag.Bool("cached", false, "search through a QueryCache instead of the model directly")
	flag.Parse()

	cfg := Config{
		Docs:        *docs,
		DocLength:   *docLength,
		QueryTerms:  *queryTerms,
		Concurrency: *concurrency,
		Duration:    *duration,
		Cached:      *cached,
	}

	fmt.Println("=== TF-IDF Index Load Test ===")
	fmt.Printf("Documents:   %d x %d terms\n", cfg.Docs, cfg.DocLength)
	fmt.Printf("Concurrency: %d\n", cfg.Concurrency)
	fmt.Printf("Duration:    %s\n", cfg.Duration)
	fmt.Printf("Cached:      %v\n", cfg.Cached)
	fmt.Println()

	model := tfidf.New[string]()

	start := time.Now()
	populate(model, cfg)
	fmt.Printf("Indexed %d documents (%d distinct terms) in %s\n",
		model.DocCount(), model.TermCount(), time.Since(start).Round(time.Millisecond))
	fmt.Println()

	stats := runQueries(model, cfg)
	printReport(stats, cfg.Duration)
}

// populate indexes the synthetic corpus from cfg.Concurrency goroutines.
// AddDoc serializes internally, so this doubles as a smoke test of the
// model's locking under concurrent mutation.
func populate(model *tfidf.Model[string], cfg Config) {
	var g errgroup.Group
	g.SetLimit(cfg.Concurrency)
	for i := 0; i < cfg.Docs; i++ {
		docID := fmt.Sprintf("doc-%d", i)
		seed := int64(i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			content := make([]string, cfg.DocLength)
			for j := range content {
				content[j] = vocabulary[rng.Intn(len(vocabulary))]
			}
			model.AddDoc(docID, content)
			return nil
		})
	}
	g.Wait()
}

func runQueries(model *tfidf.Model[string], cfg Config) *Stats {
	stats := &Stats{latencies: make([]time.Duration, 0, 100000)}
	cache := tfidf.NewQueryCache(model)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Concurrency; w++ {
		seed := int64(w)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			query := make([]string, cfg.QueryTerms)
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				for j := range query {
					query[j] = vocabulary[rng.Intn(len(vocabulary))]
				}

				start := time.Now()
				if cfg.Cached {
					cache.Search(query)
				} else {
					model.Search(query)
				}
				stats.Record(time.Since(start))
			}
		})
	}
	g.Wait()

	if cfg.Cached {
		hits, misses := cache.Stats()
		fmt.Printf("Cache: %d hits, %d misses\n", hits, misses)
		fmt.Println()
	}
	return stats
}

func printReport(stats *Stats, duration time.Duration) {
	total := stats.searches.Load()

	fmt.Println("=== Results ===")
	fmt.Printf("Total Searches:  %d\n", total)
	if total > 0 {
		fmt.Printf("Searches/sec:    %.2f\n", float64(total)/duration.Seconds())
	}

	stats.latenciesMu.Lock()
	latencies := make([]time.Duration, len(stats.latencies))
	copy(latencies, stats.latencies)
	stats.latenciesMu.Unlock()

	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool {
		return latencies[i] < latencies[j]
	})

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}
	avg := sum / time.Duration(len(latencies))

	fmt.Println()
	fmt.Println("=== Latency ===")
	fmt.Printf("Min:    %s\n", latencies[0])
	fmt.Printf("Avg:    %s\n", avg)
	fmt.Printf("P50:    %s\n", percentile(latencies, 50))
	fmt.Printf("P90:    %s\n", percentile(latencies, 90))
	fmt.Printf("P95:    %s\n", percentile(latencies, 95))
	fmt.Printf("P99:    %s\n", percentile(latencies, 99))
	fmt.Printf("Max:    %s\n", latencies[len(latencies)-1])

	var sumSquared float64
	avgFloat := float64(avg)
	for _, l := range latencies {
		diff := float64(l) - avgFloat
		sumSquared += diff * diff
	}
	stddev := time.Duration(math.Sqrt(sumSquared / float64(len(latencies))))
	fmt.Printf("StdDev: %s\n", stddev)
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
