// Package client is a small Go client for the supplier/order API. Network
// failures, timeouts and 5xx responses are retried a bounded number of times
// with an increasing delay; 4xx responses are returned as-is, never retried.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"supplier-app/models"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	MaxRetries int

	sleep func(time.Duration)
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		MaxRetries: 3,
		sleep:      time.Sleep,
	}
}

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// OrdersPage is the paginated order listing payload.
type OrdersPage struct {
	Data       []models.OrderWithSupplier `json:"data"`
	Total      int64                      `json:"total"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
	TotalPages int64                      `json:"totalPages"`
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// do issues the request, retrying on the transient error class only. The
// delay before retry n is n seconds, mirroring the bounded increasing
// backoff of the original web client.
func (c *Client) do(method, path string, body []byte) (*Envelope, int, error) {
	var lastErr error

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			c.sleep(time.Duration(attempt) * time.Second)
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequest(method, c.BaseURL+path, reader)
		if err != nil {
			return nil, 0, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %s", resp.Status)
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		var envelope Envelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, resp.StatusCode, err
		}
		return &envelope, resp.StatusCode, nil
	}

	return nil, 0, lastErr
}

func (c *Client) get(path string, out interface{}) error {
	envelope, status, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if !envelope.Success {
		return &APIError{StatusCode: status, Message: envelope.Error}
	}
	if out != nil && envelope.Data != nil {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}

func (c *Client) Health() error {
	resp, err := c.HTTPClient.Get(c.BaseURL + "/api/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: %s", resp.Status)
	}
	return nil
}

func (c *Client) GetSuppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := c.get("/api/suppliers", &suppliers)
	return suppliers, err
}

func (c *Client) SearchSuppliers(keyword string) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := c.get("/api/suppliers/search?keyword="+url.QueryEscape(keyword), &suppliers)
	return suppliers, err
}

type OrdersQuery struct {
	Page    int
	Limit   int
	Status  string
	Keyword string
}

func (c *Client) GetOrders(q OrdersQuery) (*OrdersPage, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}

	path := "/api/orders"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page OrdersPage
	if err := c.get(path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetOrder(id uint) (*models.OrderWithSupplier, error) {
	var order models.OrderWithSupplier
	err := c.get(fmt.Sprintf("/api/orders/%d", id), &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(order models.Order) (*models.Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	envelope, status, err := c.do(http.MethodPost, "/api/orders", body)
	if err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, &APIError{StatusCode: status, Message: envelope.Error}
	}

	var created models.Order
	if err := json.Unmarshal(envelope.Data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOrderStatus(id uint, status string) error {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}

	envelope, code, err := c.do(http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), body)
	if err != nil {
		return err
	}
	if !envelope.Success {
		return &APIError{StatusCode: code, Message: envelope.Error}
	}
	return nil
}
