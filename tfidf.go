// Package tfidf implements an in-memory document index with classic
// TF-IDF relevance scoring. Callers supply pre-tokenized term sequences;
// the model tracks per-document term frequencies and collection-wide
// document frequencies incrementally, and answers ranked-retrieval
// queries over the full document set.
package tfidf

import (
	"log/slog"
	"sync"
)

// TermFreq maps a term to its occurrence count within a single document.
// Absent terms implicitly have count zero; stored counts are always >= 1.
type TermFreq map[string]int

// DocFreq maps a term to the number of documents currently containing it.
// The map is self-pruning: a term whose count reaches zero is deleted
// rather than kept with a zero value.
type DocFreq map[string]int

// Doc is the per-document record held by the model. It is immutable once
// constructed; mutations go through Model.AddDoc, which builds a fresh Doc.
type Doc struct {
	TermFreq   TermFreq
	TotalTerms int
}

// Model is a TF-IDF document index generic over the document-id type.
// All exported methods are safe for concurrent use; the multi-step
// mutations in AddDoc and RemoveDoc hold the write lock for their full
// duration so document-frequency counts never observe a half-applied
// update.
type Model[K comparable] struct {
	mu         sync.RWMutex
	docs       map[K]Doc
	df         DocFreq
	generation uint64

	logger *slog.Logger
	rec    Recorder
}

// New creates an empty Model.
func New[K comparable](opts ...Option) *Model[K] {
	s := applyOptions(opts)
	return &Model[K]{
		docs:   make(map[K]Doc),
		df:     make(DocFreq),
		logger: s.logger,
		rec:    s.rec,
	}
}

// FromCollection creates a Model pre-populated from a map of document id
// to term sequence.
func FromCollection[K comparable](docs map[K][]string, opts ...Option) *Model[K] {
	m := New[K](opts...)
	for docID, content := range docs {
		m.AddDoc(docID, content)
	}
	return m
}

// AddDoc indexes a document under docID. The content must already be
// tokenized; terms are compared exactly, with no normalization. If docID
// is already present the previous version is fully removed first, so
// re-adding a document replaces it rather than accumulating counts.
// Empty content is legal and produces a document with zero terms that
// contributes nothing to the document frequencies.
func (m *Model[K]) AddDoc(docID K, content []string) {
	tf := make(TermFreq, len(content))
	for _, term := range content {
		tf[term]++
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(docID)

	for term := range tf {
		m.df[term]++
	}
	m.docs[docID] = Doc{TermFreq: tf, TotalTerms: len(content)}
	m.generation++

	m.logger.Debug("document added",
		"doc_id", docID,
		"total_terms", len(content),
		"distinct_terms", len(tf),
	)
	m.rec.DocAdded(len(content))
}

// RemoveDoc removes the document under docID. Removing an id that is not
// present is a no-op, not an error.
func (m *Model[K]) RemoveDoc(docID K) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.removeLocked(docID) {
		m.generation++
		m.logger.Debug("document removed", "doc_id", docID)
		m.rec.DocRemoved()
	}
}

// removeLocked deletes docID and rolls its terms out of the document
// frequencies, pruning any term whose count reaches zero. Caller must
// hold the write lock.
func (m *Model[K]) removeLocked(docID K) bool {
	doc, ok := m.docs[docID]
	if !ok {
		return false
	}
	delete(m.docs, docID)
	for term := range doc.TermFreq {
		m.df[term]--
		if m.df[term] <= 0 {
			delete(m.df, term)
		}
	}
	return true
}

// Contains reports whether docID is currently indexed.
func (m *Model[K]) Contains(docID K) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.docs[docID]
	return ok
}

// DocCount returns the number of documents currently indexed.
func (m *Model[K]) DocCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

// TermCount returns the number of distinct terms across all indexed
// documents.
func (m *Model[K]) TermCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.df)
}

// Doc returns the record for docID, or ok=false if it is not indexed.
// The returned Doc shares its TermFreq map with the model; callers must
// treat it as read-only.
func (m *Model[K]) Doc(docID K) (Doc, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[docID]
	return doc, ok
}

// DocumentFrequencies returns a copy of the current document-frequency
// table, suitable for use with InverseDocumentFrequency.
func (m *Model[K]) DocumentFrequencies() DocFreq {
	m.mu.RLock()
	defer m.mu.RUnlock()
	df := make(DocFreq, len(m.df))
	for term, n := range m.df {
		df[term] = n
	}
	return df
}

// Generation returns a counter that advances on every effective mutation.
// Consumers such as QueryCache use it to detect staleness.
func (m *Model[K]) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

// Merge returns a new Model containing the documents of both m and other.
// When the same document id exists in both, other's version wins. The
// merged document frequencies are rebuilt from the unioned document set
// rather than combined from the two inputs, so they always satisfy the
// same consistency guarantees as an incrementally built model.
//
// The merged model inherits m's logger and instrumentation.
func (m *Model[K]) Merge(other *Model[K]) *Model[K] {
	merged := &Model[K]{
		docs:   make(map[K]Doc),
		df:     make(DocFreq),
		logger: m.logger,
		rec:    m.rec,
	}

	m.mu.RLock()
	for docID, doc := range m.docs {
		merged.docs[docID] = doc
	}
	m.mu.RUnlock()

	other.mu.RLock()
	for docID, doc := range other.docs {
		merged.docs[docID] = doc
	}
	other.mu.RUnlock()

	for _, doc := range merged.docs {
		for term := range doc.TermFreq {
			merged.df[term]++
		}
	}

	merged.logger.Debug("models merged",
		"doc_count", len(merged.docs),
		"distinct_terms", len(merged.df),
	)
	return merged
}
