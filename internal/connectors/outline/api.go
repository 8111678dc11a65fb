package outline

import "context"

// Response records for the Outline endpoints this connector uses.
// Payloads are decoded once here, at the client boundary; the rest of the
// code works with these types rather than raw maps.

// Document is a single page of text content.
type Document struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Text             string `json:"text"`
	Emoji            string `json:"emoji"`
	ParentDocumentID string `json:"parentDocumentId"`
	CollectionID     string `json:"collectionId"`
	URLID            string `json:"urlId"`
	URL              string `json:"url"`
	UpdatedAt        string `json:"updatedAt"`
}

// Collection is a folder-like container of documents.
type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	UpdatedAt   string `json:"updatedAt"`
}

// Team identifies the workspace in auth.info responses.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the authenticated user in auth.info responses.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthInfo is the auth.info payload.
type AuthInfo struct {
	User User `json:"user"`
	Team Team `json:"team"`
}

// Pagination echoes the paging parameters on listing responses.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// SearchHit is one documents.search result.
type SearchHit struct {
	Context  string   `json:"context"`
	Ranking  float64  `json:"ranking"`
	Document Document `json:"document"`
}

// AuthInfo fetches authentication and team details.
func (c *Client) AuthInfo(ctx context.Context) (*AuthInfo, error) {
	var out struct {
		Data AuthInfo `json:"data"`
	}
	if err := c.call(ctx, "auth.info", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListDocuments lists documents, optionally filtered to one collection.
func (c *Client) ListDocuments(ctx context.Context, limit, offset int, collectionID string) ([]Document, error) {
	payload := struct {
		Limit        int    `json:"limit"`
		Offset       int    `json:"offset"`
		CollectionID string `json:"collectionId,omitempty"`
	}{Limit: limit, Offset: offset, CollectionID: collectionID}

	var out struct {
		Data       []Document `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
	if err := c.call(ctx, "documents.list", payload, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// DocumentInfo fetches one document including its text.
func (c *Client) DocumentInfo(ctx context.Context, documentID string) (*Document, error) {
	payload := struct {
		ID string `json:"id"`
	}{ID: documentID}

	var out struct {
		Data Document `json:"data"`
	}
	if err := c.call(ctx, "documents.info", payload, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListCollections lists collections.
func (c *Client) ListCollections(ctx context.Context, limit, offset int) ([]Collection, error) {
	payload := struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	}{Limit: limit, Offset: offset}

	var out struct {
		Data       []Collection `json:"data"`
		Pagination Pagination   `json:"pagination"`
	}
	if err := c.call(ctx, "collections.list", payload, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CollectionInfo fetches one collection.
func (c *Client) CollectionInfo(ctx context.Context, collectionID string) (*Collection, error) {
	payload := struct {
		ID string `json:"id"`
	}{ID: collectionID}

	var out struct {
		Data Collection `json:"data"`
	}
	if err := c.call(ctx, "collections.info", payload, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// SearchDocuments runs a full-text query.
func (c *Client) SearchDocuments(ctx context.Context, query string, limit, offset int) ([]SearchHit, error) {
	payload := struct {
		Query  string `json:"query"`
		Limit  int    `json:"limit"`
		Offset int    `json:"offset"`
	}{Query: query, Limit: limit, Offset: offset}

	var out struct {
		Data       []SearchHit `json:"data"`
		Pagination Pagination  `json:"pagination"`
	}
	if err := c.call(ctx, "documents.search", payload, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
