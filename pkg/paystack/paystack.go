package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/exiat/backend/pkg/clients"
)

var (
	// ErrGateway covers transport failures and non-2xx provider answers.
	ErrGateway = errors.New("payment gateway request failed")
	// ErrMalformedResponse covers provider answers that cannot be decoded.
	ErrMalformedResponse = errors.New("malformed payment gateway response")
)

type Customer struct {
	Email string `json:"email"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// InitializeResponse is the provider payload, passed back to the caller
// unmodified.
type InitializeResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    InitializeData `json:"data"`
}

type VerifyData struct {
	Amount    int64    `json:"amount"`
	Reference string   `json:"reference"`
	Status    string   `json:"status"`
	Customer  Customer `json:"customer"`
}

type verifyResponse struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    VerifyData `json:"data"`
}

type Client struct {
	baseURL   string
	secretKey string
	client    clients.HTTPClientI
}

func New(baseURL, secretKey string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.secretKey)
	h.Set("Content-Type", "application/json")
	return h
}

// Initialize starts a top-up transaction with the provider. The amount is in
// provider subunits.
func (c *Client) Initialize(ctx context.Context, email string, amount int64) (*InitializeResponse, error) {
	body, err := json.Marshal(map[string]interface{}{
		"email":  email,
		"amount": amount,
	})
	if err != nil {
		return nil, fmt.Errorf("can't marshal initialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	req.Header = c.headers()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrGateway, resp.StatusCode)
	}

	var initResp InitializeResponse
	if err := json.Unmarshal(respBody, &initResp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if !initResp.Status {
		return nil, fmt.Errorf("%w: %s", ErrGateway, initResp.Message)
	}
	return &initResp, nil
}

// Verify fetches the final state of a transaction by its reference.
func (c *Client) Verify(ctx context.Context, reference string) (*VerifyData, error) {
	statusCode, respBody, _, err := c.client.Get(c.baseURL+"/transaction/verify/"+reference, c.headers())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrGateway, statusCode)
	}

	var vResp verifyResponse
	if err := json.Unmarshal(respBody, &vResp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if !vResp.Status {
		return nil, fmt.Errorf("%w: %s", ErrGateway, vResp.Message)
	}
	return &vResp.Data, nil
}
