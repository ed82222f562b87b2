package core

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidArgument is returned when a store operation receives an input it
// cannot act on, such as a nil document.
var ErrInvalidArgument = errors.New("invalid argument")

type (
	Author struct {
		ID   string
		Name string
	}

	// Document is held by value inside a store. An empty ID means the store
	// has not assigned one yet.
	Document struct {
		ID      string
		Title   string
		Content string
		Author  Author
		Created time.Time
	}

	// SearchRequest filters documents. Nil slices and zero times leave their
	// dimension unconstrained.
	SearchRequest struct {
		TitlePrefixes    []string
		ContainsContents []string
		AuthorIDs        []string
		CreatedFrom      time.Time
		CreatedTo        time.Time
	}

	DocumentStore interface {
		Save(ctx context.Context, document *Document) (*Document, error)
		FindID(ctx context.Context, id string) (*Document, bool)
		Search(ctx context.Context, request *SearchRequest) []*Document
	}
)
