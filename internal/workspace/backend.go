package workspace

import (
	"context"

	"github.com/veritext/veritext/internal/model"
)

// Backend is the slice of the REST client the workspace orchestrators use.
// *api.Client satisfies it; tests substitute fakes.
type Backend interface {
	ListDocuments(ctx context.Context, userID int) ([]model.DocumentSummary, error)
	GetDocument(ctx context.Context, documentID int) (*model.DocumentDetail, error)
	CreateDocument(ctx context.Context, userID int, payload model.DocumentPayload) (*model.DocumentDetail, error)
	UpdateDocument(ctx context.Context, documentID int, payload model.DocumentPayload) (*model.DocumentDetail, error)
	DeleteDocument(ctx context.Context, documentID int) error
	Analyze(ctx context.Context, documentID int) error
	ListSentences(ctx context.Context, documentID int) ([]model.Sentence, error)
	ListCorrections(ctx context.Context, sentenceID int) ([]model.Correction, error)
}
