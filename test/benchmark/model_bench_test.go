// Package benchmark contains Go benchmarks for the TF-IDF model,
// measuring indexing throughput, search latency, and merge cost.
package benchmark

import (
	"fmt"
	"math/rand"
	"testing"

	tfidf "github.com/t4skmanag3r/go-tfidf"
)

var vocabulary = []string{
	"distributed", "search", "analytics", "platform", "indexing",
	"query", "engine", "ranking", "relevance", "document", "term",
	"frequency", "inverse", "corpus", "token", "retrieval", "score",
	"cache", "merge", "model", "apple", "banana", "orange", "tomato",
}

// syntheticContent builds a deterministic pseudo-random term sequence.
func syntheticContent(rng *rand.Rand, length int) []string {
	content := make([]string, length)
	for i := range content {
		content[i] = vocabulary[rng.Intn(len(vocabulary))]
	}
	return content
}

// populated returns a model pre-loaded with n synthetic documents.
func populated(n int) *tfidf.Model[string] {
	m := tfidf.New[string]()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		m.AddDoc(fmt.Sprintf("doc-%d", i), syntheticContent(rng, 50))
	}
	return m
}

// BenchmarkModelAddDoc measures per-document insert throughput.
func BenchmarkModelAddDoc(b *testing.B) {
	m := tfidf.New[string]()
	rng := rand.New(rand.NewSource(1))
	content := syntheticContent(rng, 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.AddDoc(fmt.Sprintf("doc-%d", i), content)
	}
}

// BenchmarkModelReplaceDoc measures the removal-then-insert path taken
// when a document id is re-added.
func BenchmarkModelReplaceDoc(b *testing.B) {
	m := tfidf.New[string]()
	rng := rand.New(rand.NewSource(1))
	content := syntheticContent(rng, 50)
	m.AddDoc("doc", content)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.AddDoc("doc", content)
	}
}

// BenchmarkModelSearch measures full-store scoring at various corpus
// sizes.
func BenchmarkModelSearch(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	query := []string{"search", "ranking", "apple"}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("docs_%d", size), func(b *testing.B) {
			m := populated(size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				results := m.Search(query)
				_ = results
			}
		})
	}
}

// BenchmarkModelSearchParallel measures concurrent read throughput.
func BenchmarkModelSearchParallel(b *testing.B) {
	m := populated(10000)
	query := []string{"search", "ranking", "apple"}
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			results := m.Search(query)
			_ = results
		}
	})
}

// BenchmarkQueryCacheSearch measures repeated-query latency through the
// cache, which should collapse to a map lookup after the first search.
func BenchmarkQueryCacheSearch(b *testing.B) {
	m := populated(10000)
	c := tfidf.NewQueryCache(m)
	query := []string{"search", "ranking", "apple"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		results := c.Search(query)
		_ = results
	}
}

// BenchmarkModelMerge measures the cost of unioning two models and
// rebuilding the document frequencies.
func BenchmarkModelMerge(b *testing.B) {
	sizes := []int{100, 1000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("docs_%d", size), func(b *testing.B) {
			left := populated(size)
			right := populated(size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				merged := left.Merge(right)
				_ = merged
			}
		})
	}
}
