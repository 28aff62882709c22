// Package source fetches the upstream Digimon catalog.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/FlagBrew/digidex/internal/models"
	"github.com/tidwall/gjson"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	ErrMalformedPayload = errors.New("upstream payload is not a JSON array")
)

// maxBodySize caps how much of the upstream response is read. The real
// catalog is well under 100KB.
const maxBodySize = 16 << 20

// Client lists the raw upstream catalog.
type Client interface {
	ListDigimon(ctx context.Context) ([]models.RawDigimon, error)
}

type Config struct {
	URL string
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

type HTTPClient struct {
	url     string
	timeout time.Duration
	http    *http.Client
}

func New(cfg Config) (*HTTPClient, error) {
	if cfg.URL == "" {
		return nil, errors.New("source: url is required")
	}

	c := &HTTPClient{
		url:     cfg.URL,
		timeout: cfg.Timeout,
		http:    cfg.HTTPClient,
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}

	return c, nil
}

func (c *HTTPClient) URL() string {
	return c.url
}

// ListDigimon performs a single GET. There is no retry.
func (c *HTTPClient) ListDigimon(ctx context.Context) ([]models.RawDigimon, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "digidex")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	return Decode(body)
}

// Decode reads the upstream array. Every element yields one entry; missing
// fields are left empty.
func Decode(body []byte) ([]models.RawDigimon, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedPayload
	}

	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return nil, ErrMalformedPayload
	}

	out := make([]models.RawDigimon, 0, 256)
	result.ForEach(func(_, v gjson.Result) bool {
		out = append(out, models.RawDigimon{
			Name:  v.Get("name").String(),
			Level: v.Get("level").String(),
			Img:   v.Get("img").String(),
		})
		return true
	})

	return out, nil
}
