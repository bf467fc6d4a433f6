package tfidf

import (
	"math"
	"sort"
	"time"
)

// ScoredDoc is a single ranked search result.
type ScoredDoc[K comparable] struct {
	DocID K       `json:"doc_id"`
	Score float64 `json:"score"`
}

// TermFrequency returns the relative frequency of term within doc: its
// occurrence count divided by the document's total term count. A document
// with no terms scores 0.0 for every term rather than dividing by zero.
func TermFrequency(term string, doc Doc) float64 {
	if doc.TotalTerms == 0 {
		return 0
	}
	return float64(doc.TermFreq[term]) / float64(doc.TotalTerms)
}

// InverseDocumentFrequency returns log10(nDocs/m) where m is the number
// of documents containing term. A term absent from df falls back to
// m = 1, so out-of-vocabulary query terms produce a finite score instead
// of an error.
func InverseDocumentFrequency(term string, nDocs int, df DocFreq) float64 {
	m, ok := df[term]
	if !ok {
		m = 1
	}
	return math.Log10(float64(nDocs) / float64(m))
}

// Search ranks every indexed document against the query and returns one
// ScoredDoc per document, sorted by score descending. Documents matching
// no query term are included with score 0.0. The sum runs over the query
// sequence as given, so a term repeated in the query contributes once per
// repetition. An empty store yields an empty slice; an empty query yields
// every document with score 0.0.
//
// The sort is stable, so documents with equal scores keep their relative
// encounter order; because that order comes from map iteration, tie order
// is not deterministic across calls.
func (m *Model[K]) Search(query []string) []ScoredDoc[K] {
	start := time.Now()

	m.mu.RLock()
	nDocs := len(m.docs)
	results := make([]ScoredDoc[K], 0, nDocs)
	for docID, doc := range m.docs {
		score := 0.0
		for _, term := range query {
			score += TermFrequency(term, doc) * InverseDocumentFrequency(term, nDocs, m.df)
		}
		results = append(results, ScoredDoc[K]{DocID: docID, Score: score})
	}
	m.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	elapsed := time.Since(start)
	m.logger.Debug("search completed",
		"query_terms", len(query),
		"results", len(results),
		"elapsed", elapsed,
	)
	m.rec.SearchCompleted(len(query), len(results), elapsed)
	return results
}
