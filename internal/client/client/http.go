package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/bloodbank/internal/client/models"
	"github.com/dmitrijs2005/bloodbank/internal/common"
	"github.com/dmitrijs2005/bloodbank/internal/netx"
	"github.com/google/uuid"
)

const (
	healthPath   = "/health"
	donorsPath   = "/donors"
	requestsPath = "/requests"
)

// HTTPClient talks to the REST API under baseURL.
type HTTPClient struct {
	baseURL        string
	httpClient     *http.Client
	requestTimeout time.Duration
	newRequestID   func() string
}

// NewHTTPClient returns a client for the API at baseURL
// (e.g. "http://localhost:5000/api"). A zero requestTimeout means list and
// create calls run without a deadline of their own.
func NewHTTPClient(baseURL string, requestTimeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{},
		requestTimeout: requestTimeout,
		newRequestID:   uuid.NewString,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	h := http.Header{}
	h.Set(common.RequestIDHeaderName, c.newRequestID())

	err := netx.DoJSON(ctx, c.httpClient, method, c.baseURL+path, h, body, out)
	return c.mapError(err)
}

func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	var se *netx.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %w", ErrUnexpectedStatus, err)
	}

	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &ne) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return fmt.Errorf("api error: %w", err)
}

// Health succeeds only on a 2xx answer from the health endpoint. The
// caller's context bounds the wait.
func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, healthPath, nil, nil)
}

func (c *HTTPClient) ListDonors(ctx context.Context) ([]models.Donor, error) {
	var donors []models.Donor
	if err := c.do(ctx, http.MethodGet, donorsPath, nil, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}

func (c *HTTPClient) CreateDonor(ctx context.Context, in models.DonorInput) (models.Donor, error) {
	var donor models.Donor
	if err := c.do(ctx, http.MethodPost, donorsPath, in, &donor); err != nil {
		return models.Donor{}, err
	}
	return donor, nil
}

func (c *HTTPClient) ListRequests(ctx context.Context) ([]models.BloodRequest, error) {
	var requests []models.BloodRequest
	if err := c.do(ctx, http.MethodGet, requestsPath, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *HTTPClient) CreateRequest(ctx context.Context, in models.RequestInput) (models.BloodRequest, error) {
	var request models.BloodRequest
	if err := c.do(ctx, http.MethodPost, requestsPath, in, &request); err != nil {
		return models.BloodRequest{}, err
	}
	return request, nil
}
