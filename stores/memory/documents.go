package memory

import (
	"context"
	"docstore/core"
	"fmt"
	"slices"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// documentStore keeps documents in insertion order. Replacing a document
// moves it to the end.
type documentStore struct {
	mu        sync.RWMutex
	documents []core.Document
	log       logrus.FieldLogger
}

func NewDocumentStore(log logrus.FieldLogger) core.DocumentStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &documentStore{log: log.WithField("storageType", "in-memory")}
}

func (s *documentStore) Save(ctx context.Context, document *core.Document) (*core.Document, error) {
	if document == nil {
		s.log.Warn("Rejected nil document")
		return nil, fmt.Errorf("%w: document cannot be nil", core.ErrInvalidArgument)
	}

	stored := *document
	if stored.ID == "" {
		stored.ID = ulid.Make().String()
	}

	s.mu.Lock()
	before := len(s.documents)
	s.documents = slices.DeleteFunc(s.documents, func(d core.Document) bool {
		return d.ID == stored.ID
	})
	replaced := len(s.documents) < before
	s.documents = append(s.documents, stored)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"document_id": stored.ID,
		"replaced":    replaced,
	}).Debug("Document saved")
	return &stored, nil
}

func (s *documentStore) FindID(ctx context.Context, id string) (*core.Document, bool) {
	log := s.log.WithField("document_id", id)
	if id == "" {
		log.Debug("Empty document ID")
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.documents {
		if d.ID == id {
			log.Debug("Document retrieved")
			return &d, true
		}
	}
	log.Debug("Document with specified ID not found")
	return nil, false
}

func (s *documentStore) Search(ctx context.Context, request *core.SearchRequest) []*core.Document {
	found := []*core.Document{}
	if request == nil {
		s.log.Debug("Nil search request matches nothing")
		return found
	}

	s.mu.RLock()
	for i := range s.documents {
		if request.Matches(&s.documents[i]) {
			d := s.documents[i]
			found = append(found, &d)
		}
	}
	total := len(s.documents)
	s.mu.RUnlock()

	s.log.WithFields(logrus.Fields{
		"scanned":      total,
		"result_count": len(found),
	}).Debug("Search completed")
	return found
}
