package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/models"
)

const (
	defaultNotionBaseURL = "https://api.notion.com"

	// notionVersion pins the Notion API revision; page property shapes
	// differ between revisions.
	notionVersion = "2022-06-28"

	pagesPath = "/v1/pages"
)

type notionAdapter struct {
	client *resty.Client
	log    *logger.Logger
}

// NewNotionAdapter builds a Notion client around the integration token.
// Notion has no separate login call; the token is validated implicitly on
// the first write, and a rejected token surfaces as [ErrUnauthorized].
func NewNotionAdapter(cfg config.Notion, httpCfg config.HTTP, log *logger.Logger) NotesAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultNotionBaseURL
	}
	timeout := httpCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.Token).
		SetHeader("Notion-Version", notionVersion)

	return &notionAdapter{client: cli, log: log}
}

func (n *notionAdapter) CreatePage(ctx context.Context, databaseID string, properties models.PageProperties) error {
	req := models.PageCreateRequest{
		Parent:     models.PageParent{DatabaseID: databaseID},
		Properties: properties,
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pagesPath)
	if err != nil {
		return fmt.Errorf("notion create page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("notion create page: %w", err)
	}

	return nil
}
