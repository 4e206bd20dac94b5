package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/madeinoz67/partshub-sub000/pkg/part"
)

// ErrNotFound reports that no record exists for an identifier. It is
// not a failure: viewers render their no-data state instead of an
// error.
var ErrNotFound = errors.New("record not found")

// RecordSource supplies component records by identifier.
type RecordSource interface {
	Symbol(ctx context.Context, id string) (*part.SymbolRecord, error)
	Footprint(ctx context.Context, id string) (*part.FootprintRecord, error)
}

// maxRecordBytes bounds how much of a response body is read; records
// are small and anything larger is a misbehaving backend.
const maxRecordBytes = 8 << 20

// HTTPSource fetches records from the inventory REST API.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource builds a source against a base URL such as
// "http://localhost:8000". A default client with a request timeout is
// used unless SetClient replaces it.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// SetClient replaces the underlying HTTP client, for tests and callers
// with their own transport configuration.
func (s *HTTPSource) SetClient(c *http.Client) {
	if c != nil {
		s.client = c
	}
}

// Symbol fetches the symbol record for a component.
func (s *HTTPSource) Symbol(ctx context.Context, id string) (*part.SymbolRecord, error) {
	data, err := s.fetch(ctx, fmt.Sprintf("/api/components/%s/symbol", url.PathEscape(id)))
	if err != nil {
		return nil, err
	}
	return part.DecodeSymbol(data)
}

// Footprint fetches the footprint record for a component.
func (s *HTTPSource) Footprint(ctx context.Context, id string) (*part.FootprintRecord, error) {
	data, err := s.fetch(ctx, fmt.Sprintf("/api/components/%s/footprint", url.PathEscape(id)))
	if err != nil {
		return nil, err
	}
	return part.DecodeFootprint(data)
}

func (s *HTTPSource) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", path, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRecordBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// StaticSource serves records from memory. Tests and the CLI use it for
// local data.
type StaticSource struct {
	Symbols    map[string]*part.SymbolRecord
	Footprints map[string]*part.FootprintRecord
}

// Symbol returns the stored symbol record or ErrNotFound.
func (s *StaticSource) Symbol(ctx context.Context, id string) (*part.SymbolRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := s.Symbols[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Footprint returns the stored footprint record or ErrNotFound.
func (s *StaticSource) Footprint(ctx context.Context, id string) (*part.FootprintRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := s.Footprints[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}
