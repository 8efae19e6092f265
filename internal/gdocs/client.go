package gdocs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"minutify/internal/contextutil"
)

var (
	// ErrNotFound is returned when the document does not exist or is not
	// publicly readable.
	ErrNotFound = errors.New("document not found or not publicly accessible")
	// ErrInvalidURL is returned when no document ID can be read from a URL.
	ErrInvalidURL = errors.New("could not extract document ID from URL")
)

// ImportTitle is the title reported for every imported document; the plain
// text export does not carry the real one.
const ImportTitle = "Google Docs Import"

// URLMarker must appear in every accepted Google Docs URL.
const URLMarker = "docs.google.com/document/d/"

// IsDocumentURL reports whether url points at a Google Docs document.
func IsDocumentURL(url string) bool {
	return strings.Contains(url, URLMarker)
}

var documentIDPattern = regexp.MustCompile(`/document/d/([a-zA-Z0-9_-]+)`)

// DocumentID extracts the document ID from a Google Docs URL.
func DocumentID(url string) (string, error) {
	m := documentIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", ErrInvalidURL
	}
	return m[1], nil
}

// Client downloads public Google Docs documents through the plain-text
// export endpoint. No credentials are used.
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient creates a new Client. timeout bounds each export request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchText downloads the document as plain text, without a byte-order mark
// and surrounding whitespace.
func (c *Client) FetchText(ctx context.Context, docID string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	url := fmt.Sprintf("%s/document/d/%s/export?format=txt", c.BaseURL, docID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch document: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("failed to fetch document: HTTP %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	text := strings.TrimPrefix(string(raw), "\ufeff")
	logger.DebugContext(ctx, "fetched google doc", "doc_id", docID, "bytes", len(raw))
	return strings.TrimSpace(text), nil
}
