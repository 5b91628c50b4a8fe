package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/veritext/veritext/internal/model"
)

// ListDocuments returns the document summaries for one user.
func (c *Client) ListDocuments(ctx context.Context, userID int) ([]model.DocumentSummary, error) {
	var docs []model.DocumentSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/documents/?user_id=%d", userID), nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument fetches one document with its content.
func (c *Client) GetDocument(ctx context.Context, documentID int) (*model.DocumentDetail, error) {
	var doc model.DocumentDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/documents/%d/", documentID), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateDocument persists a new document and returns its full detail. The
// create endpoint only returns the new id.
func (c *Client) CreateDocument(ctx context.Context, userID int, payload model.DocumentPayload) (*model.DocumentDetail, error) {
	req := struct {
		UserID  int    `json:"user_id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}{UserID: userID, Title: payload.Title, Content: payload.Content}

	var resp struct {
		DocumentID int `json:"document_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/documents/create/", req, &resp); err != nil {
		return nil, err
	}
	return c.GetDocument(ctx, resp.DocumentID)
}

// UpdateDocument saves title/content and returns the refreshed detail.
func (c *Client) UpdateDocument(ctx context.Context, documentID int, payload model.DocumentPayload) (*model.DocumentDetail, error) {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/documents/%d/update/", documentID), payload, nil); err != nil {
		return nil, err
	}
	return c.GetDocument(ctx, documentID)
}

// DeleteDocument removes a document. A backend "not found" is treated as
// success so deletion is idempotent.
func (c *Client) DeleteDocument(ctx context.Context, documentID int) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/documents/%d/delete/", documentID), nil, nil)
	if err != nil && IsNotFound(err) {
		return nil
	}
	return err
}

// ListSentences returns the sentence records from the document's most recent
// analysis run.
func (c *Client) ListSentences(ctx context.Context, documentID int) ([]model.Sentence, error) {
	var sentences []model.Sentence
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/documents/%d/sentences/", documentID), nil, &sentences); err != nil {
		return nil, err
	}
	return sentences, nil
}

// Analyze triggers a fact-checking run for the document. Results are pulled
// afterwards via ListSentences and ListCorrections.
func (c *Client) Analyze(ctx context.Context, documentID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/documents/%d/analyze/", documentID), nil, nil)
}

// ListCorrections returns the corrections proposed for one sentence.
func (c *Client) ListCorrections(ctx context.Context, sentenceID int) ([]model.Correction, error) {
	var corrections []model.Correction
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sentences/%d/corrections/", sentenceID), nil, &corrections); err != nil {
		return nil, err
	}
	return corrections, nil
}
