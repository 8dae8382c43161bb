package bolagsverket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/ternarybob/arbor"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/svenskadata/bolagskollen/internal/common"
	"github.com/svenskadata/bolagskollen/internal/interfaces"
	"github.com/svenskadata/bolagskollen/internal/models"
)

const (
	memoTTL     = 5 * time.Minute
	memoCleanup = 10 * time.Minute
)

// Client talks to Bolagsverket's "Vardefulla datamangder" API. Token
// acquisition and refresh is handled by the oauth2 client-credentials flow;
// registry responses are memoized for a short TTL and downloaded filing
// archives go through the filing cache.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	memo        *gocache.Cache
	filingCache interfaces.FilingCache
	logger      arbor.ILogger
}

// Compile-time assertion
var _ interfaces.DocumentSource = (*Client)(nil)

// NewClient creates an API client from configuration
func NewClient(config *common.APIConfig, filingCache interfaces.FilingCache, logger arbor.ILogger) *Client {
	ccfg := clientcredentials.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TokenURL:     config.TokenURL,
		Scopes:       strings.Fields(config.Scope),
	}

	// Bound the token request with the same timeout as API requests
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Timeout: config.RequestTimeout,
	})

	httpClient := ccfg.Client(ctx)
	httpClient.Timeout = config.RequestTimeout

	return &Client{
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		httpClient:  httpClient,
		memo:        gocache.New(memoTTL, memoCleanup),
		filingCache: filingCache,
		logger:      logger,
	}
}

// Ping checks upstream availability via the isalive endpoint
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodGet, "/isalive", nil, "")
	return err
}

// CompanyInfo fetches and maps basic registry data for an organisation
func (c *Client) CompanyInfo(ctx context.Context, orgNumber string) (*models.CompanyInfo, error) {
	clean, err := common.ValidateOrgNumber(orgNumber)
	if err != nil {
		return nil, models.NewAPIError(models.ErrCodeInvalidInput, err.Error(), nil)
	}

	memoKey := "org:" + clean
	if cached, found := c.memo.Get(memoKey); found {
		info := cached.(models.CompanyInfo)
		return &info, nil
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/organisationer", map[string]string{
		"identitetsbeteckning": clean,
	}, "")
	if err != nil {
		return nil, err
	}

	var resp organisationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, models.NewAPIError(models.ErrCodeUpstreamAPI, "unexpected organisation response", err)
	}

	if len(resp.Organisationer) == 0 {
		return nil, models.NewAPIError(models.ErrCodeCompanyNotFound,
			fmt.Sprintf("company %s not found", common.FormatOrgNumber(clean)), nil)
	}

	info := resp.Organisationer[0].toCompanyInfo(clean)
	c.memo.Set(memoKey, *info, gocache.DefaultExpiration)

	return info, nil
}

// ListFilings lists available annual-report filings, most recent first
func (c *Client) ListFilings(ctx context.Context, orgNumber string) ([]models.Filing, error) {
	clean, err := common.ValidateOrgNumber(orgNumber)
	if err != nil {
		return nil, models.NewAPIError(models.ErrCodeInvalidInput, err.Error(), nil)
	}

	memoKey := "filings:" + clean
	if cached, found := c.memo.Get(memoKey); found {
		return cached.([]models.Filing), nil
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/dokumentlista", map[string]string{
		"identitetsbeteckning": clean,
	}, "")
	if err != nil {
		return nil, err
	}

	var resp dokumentlistaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, models.NewAPIError(models.ErrCodeUpstreamAPI, "unexpected document list response", err)
	}

	filings := make([]models.Filing, 0, len(resp.Dokument))
	for i, dok := range resp.Dokument {
		filings = append(filings, models.Filing{
			Index:      i,
			DocumentID: dok.DokumentID,
			PeriodFrom: dok.Rakenskapsperiod.Fran,
			PeriodTo:   dok.Rakenskapsperiod.Till,
			FiledDate:  dok.Inlamningsdatum,
		})
	}

	c.memo.Set(memoKey, filings, gocache.DefaultExpiration)

	return filings, nil
}

// FetchFiling downloads the filing at the given index and extracts the iXBRL
// document from its ZIP archive. Archives are served from the filing cache
// when available.
func (c *Client) FetchFiling(ctx context.Context, orgNumber string, index int) (*interfaces.FilingDocument, error) {
	clean, err := common.ValidateOrgNumber(orgNumber)
	if err != nil {
		return nil, models.NewAPIError(models.ErrCodeInvalidInput, err.Error(), nil)
	}

	filings, err := c.ListFilings(ctx, clean)
	if err != nil {
		return nil, err
	}

	if len(filings) == 0 {
		return nil, models.NewAPIError(models.ErrCodeFilingNotFound,
			fmt.Sprintf("no annual reports found for %s", common.FormatOrgNumber(clean)), nil)
	}
	if index < 0 || index >= len(filings) {
		return nil, models.NewAPIError(models.ErrCodeFilingNotFound,
			fmt.Sprintf("filing index %d not available, %d filings exist", index, len(filings)), nil)
	}

	filing := filings[index]

	cacheKey := fmt.Sprintf("filing:%s:%s", clean, filing.DocumentID)
	zipBytes, cached := c.filingCache.Get(cacheKey)
	if !cached {
		c.logger.Info().
			Str("org_number", common.FormatOrgNumber(clean)).
			Str("document_id", filing.DocumentID).
			Int("index", index).
			Msg("Downloading filing")

		zipBytes, err = c.doRequest(ctx, http.MethodGet, "/dokument/"+filing.DocumentID, nil, "application/zip")
		if err != nil {
			return nil, err
		}

		if err := c.filingCache.Set(cacheKey, zipBytes); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to cache filing archive")
		}
	}

	xhtml, err := extractXHTML(zipBytes)
	if err != nil {
		return nil, err
	}

	return &interfaces.FilingDocument{
		Filing: filing,
		XHTML:  xhtml,
		Zip:    zipBytes,
	}, nil
}

// doRequest performs an authenticated API request and returns the body bytes
func (c *Client) doRequest(ctx context.Context, method, path string, jsonBody any, accept string) ([]byte, error) {
	var body io.Reader
	if jsonBody != nil {
		data, err := json.Marshal(jsonBody)
		if err != nil {
			return nil, models.NewAPIError(models.ErrCodeUpstreamAPI, "failed to encode request", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, models.NewAPIError(models.ErrCodeUpstreamAPI, "failed to build request", err)
	}

	req.Header.Set("X-Request-Id", uuid.NewString())
	if jsonBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, models.NewAPIError(models.ErrCodeAuth, "token request failed", err)
		}
		return nil, models.NewAPIError(models.ErrCodeUpstreamAPI, "request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewAPIError(models.ErrCodeUpstreamAPI, "failed to read response", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, models.NewAPIError(models.ErrCodeAuth,
			fmt.Sprintf("HTTP %d from %s", resp.StatusCode, path), nil)
	default:
		return nil, models.NewAPIError(models.ErrCodeUpstreamAPI, apiErrorDetail(resp.StatusCode, data), nil)
	}
}

// apiErrorDetail extracts the upstream "detail" message when the error body
// is JSON, falling back to a status-line summary
func apiErrorDetail(status int, body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	snippet := string(body)
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	return fmt.Sprintf("HTTP %d: %s", status, snippet)
}
