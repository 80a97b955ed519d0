package ofd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ofd_import/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	authPath = "/api/auth"

	// The query filters the whole calendar day in the register's local
	// time; the operator has no timezone notion in this API version.
	dayStartSuffix = "T00:00:00"
	dayEndSuffix   = "T23:59:59"

	queryDateLayout = "2006-01-02"
)

var (
	ErrNoToken      = errors.New("ofd auth response has no token")
	ErrNoDocuments  = errors.New("ofd response has no documents field")
	ErrUnauthorized = errors.New("ofd unauthorized")
)

type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("ofd api error: %s", e.Status)
	}
	return fmt.Sprintf("ofd api error: %s: %s", e.Status, e.Body)
}

// Client talks to the 1-ОФД rent API. It owns the underlying connection
// pool; Close releases it when the host unloads the source.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{
		http:   httpClient,
		logger: logger.Named("ofd"),
	}
}

// Authenticate exchanges the permanent API key for a short-lived session
// token. Any transport, status, or body-shape failure is an error; the
// caller decides whether a failed auth aborts the run.
func (c *Client) Authenticate(ctx context.Context, apiKey string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"apiKey": apiKey}).
		Post(authPath)
	if err != nil {
		return "", fmt.Errorf("ofd auth request: %w", err)
	}
	if resp.IsError() {
		return "", apiErrorFromResponse(resp)
	}

	var body authResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("ofd auth response: %w", err)
	}
	if strings.TrimSpace(body.Token) == "" {
		return "", ErrNoToken
	}

	c.logger.Debug("session token obtained")
	return body.Token, nil
}

// FetchDay queries one calendar day of TICKET documents for the given
// register. The parameter order in the query string is part of the
// operator's compatibility contract, so the URL is built by hand rather
// than through url.Values, which would re-sort the keys. Values are
// still escaped individually: the storage serial is free-form and must
// not be able to smuggle extra parameters into the query.
func (c *Client) FetchDay(ctx context.Context, taxID, deviceID, storageSerial, token string, day time.Time) ([]Document, error) {
	date := day.Format(queryDateLayout)
	path := fmt.Sprintf(
		"/api/rent/v2/organisations/%s/documents?kkmRegId=%s&transactionTypes=TICKET&fsFactoryNumber=%s&fromDate=%s%s&toDate=%s%s",
		url.PathEscape(taxID), url.QueryEscape(deviceID), url.QueryEscape(storageSerial), date, dayStartSuffix, date, dayEndSuffix,
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("ofd documents request for %s: %w", date, err)
	}
	if resp.IsError() {
		return nil, apiErrorFromResponse(resp)
	}

	var body documentsResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("ofd documents response for %s: %w", date, err)
	}
	if body.Documents == nil {
		return nil, fmt.Errorf("%w (date %s)", ErrNoDocuments, date)
	}

	c.logger.Debug("day fetched",
		zap.String("date", date),
		zap.Int("documents", len(*body.Documents)),
	)
	return *body.Documents, nil
}

// Close releases the client's idle connections.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

func apiErrorFromResponse(resp *resty.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       strings.TrimSpace(resp.String()),
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error())
	default:
		return apiErr
	}
}
