package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/jerseyfront/jerseyfront/pkg/config"
	pkgerrors "github.com/jerseyfront/jerseyfront/pkg/errors"
	"github.com/jerseyfront/jerseyfront/pkg/logger"
)

var errLoggerRequired = errors.New("catalog logger is required")

// ProductInput is the payload for upstream create/update calls. Price is
// serialized as a string because the upstream parses it leniently.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Size        string          `json:"size"`
	State       string          `json:"state"`
	Price       decimal.Decimal `json:"price"`
	Images      string          `json:"images,omitempty"`
}

// Client wraps the external product REST API with centralized logging,
// timeouts, and error mapping. It is the only component that talks to
// the upstream.
type Client struct {
	httpClient *http.Client
	baseURL    string
	imageBase  string
	logger     *logger.Logger
}

// NewClient validates the upstream configuration and builds the client.
func NewClient(cfg config.UpstreamConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("upstream base url is required")
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		imageBase:  cfg.ImageBaseURL,
		logger:     logg,
	}, nil
}

// FetchProducts performs the single full-catalog read. The load is
// all-or-nothing: a transport error or non-2xx status fails the whole
// fetch and no partial catalog is returned.
func (c *Client) FetchProducts(ctx context.Context) (products []Product, err error) {
	c.log(ctx, "request", "fetch_products", nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build products request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", "fetch_products", map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "fetch products")
	}
	defer func() {
		err = multierr.Append(err, drainAndClose(resp.Body))
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log(ctx, "error", "fetch_products", map[string]any{"status": resp.StatusCode})
		return nil, upstreamStatusError("fetch products", resp.StatusCode)
	}

	var wire []wireProduct
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		c.log(ctx, "error", "fetch_products", map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode products payload")
	}

	products = make([]Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, w.toProduct(c.imageBase))
	}

	c.log(ctx, "response", "fetch_products", map[string]any{"count": len(products)})
	return products, nil
}

// CreateProduct posts a new product to the upstream collection.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) error {
	return c.mutate(ctx, "create_product", http.MethodPost, c.baseURL+"/products", &input)
}

// UpdateProduct replaces the identified product upstream.
func (c *Client) UpdateProduct(ctx context.Context, id ProductID, input ProductInput) error {
	return c.mutate(ctx, "update_product", http.MethodPut, c.productURL(id), &input)
}

// DeleteProduct removes the identified product upstream.
func (c *Client) DeleteProduct(ctx context.Context, id ProductID) error {
	return c.mutate(ctx, "delete_product", http.MethodDelete, c.productURL(id), nil)
}

func (c *Client) productURL(id ProductID) string {
	return fmt.Sprintf("%s/products/%s", c.baseURL, string(id))
}

func (c *Client) mutate(ctx context.Context, op, method, url string, input *ProductInput) (err error) {
	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode product payload")
		}
		body = bytes.NewReader(payload)
	}

	c.log(ctx, "request", op, map[string]any{"url": url})

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build product request")
	}
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, op)
	}
	defer func() {
		err = multierr.Append(err, drainAndClose(resp.Body))
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log(ctx, "error", op, map[string]any{"status": resp.StatusCode})
		return upstreamStatusError(op, resp.StatusCode)
	}

	c.log(ctx, "response", op, map[string]any{"status": resp.StatusCode})
	return nil
}

func upstreamStatusError(op string, status int) error {
	code := pkgerrors.CodeUpstream
	switch status {
	case http.StatusNotFound:
		code = pkgerrors.CodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = pkgerrors.CodeValidation
	case http.StatusConflict:
		code = pkgerrors.CodeConflict
	}
	return pkgerrors.New(code, fmt.Sprintf("upstream %s failed", op)).
		WithDetails(map[string]any{"status": status})
}

func drainAndClose(body io.ReadCloser) error {
	_, copyErr := io.Copy(io.Discard, body)
	return multierr.Append(copyErr, body.Close())
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = v
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Warn(ctx, fmt.Sprintf("upstream %s", op))
	default:
		c.logger.Info(ctx, fmt.Sprintf("upstream %s", phase))
	}
}
