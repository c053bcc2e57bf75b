package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/client/models"
	"github.com/Shivam7262/Writely/internal/client/session"
)

// networkErrMsg is the single message shown for any transport-level failure,
// so views never branch on transport vs. application errors.
const networkErrMsg = "Network error. Please check your connection."

// HTTPClient talks to the backend over REST. All requests carry the bearer
// token from the injected session store when one is present; any 401
// response clears the stored token.
type HTTPClient struct {
	baseURL string
	tokens  session.Store
	http    *http.Client
	timeout time.Duration
}

// NewHTTPClient constructs a client for baseURL (e.g. "http://localhost:3000").
func NewHTTPClient(baseURL string, tokens session.Store, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{},
		timeout: timeout,
	}
}

// errorBody is the failure envelope every endpoint returns.
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// do runs one request and decodes the response into out (when non-nil).
// Failures are normalized: transport errors become ErrNetwork with a fixed
// message, HTTP failures become the matching taxonomy error carrying the
// server's message, and undecodable bodies become ErrUnexpected.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrUnexpected, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUnexpected, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrNetwork, networkErrMsg)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: invalid response from server", apperr.ErrUnexpected)
		}
	}
	return nil
}

// mapError turns a failure response into a taxonomy error. A 401 anywhere
// invalidates the stored token; the controllers observe the cleared session
// and drop back to the login view.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var body errorBody
	message := ""
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		message = body.Error
	}

	var kind error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		_ = c.tokens.Clear()
		kind = apperr.ErrUnauthorized
	case http.StatusForbidden:
		kind = apperr.ErrForbidden
	case http.StatusNotFound:
		kind = apperr.ErrNotFound
	case http.StatusBadRequest:
		kind = apperr.ErrValidation
	default:
		kind = apperr.ErrUnexpected
	}

	if message == "" {
		message = "An unexpected error occurred."
	}
	return fmt.Errorf("%w: %s", kind, message)
}

type tokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type userResponse struct {
	Success bool        `json:"success"`
	Data    models.User `json:"data"`
}

type documentResponse struct {
	Success bool            `json:"success"`
	Data    models.Document `json:"data"`
}

type documentListResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Data    []models.Document `json:"data"`
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type documentReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type documentPatchReq struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", credentialsReq{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: invalid response from server", apperr.ErrUnexpected)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentialsReq{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: invalid response from server", apperr.ErrUnexpected)
	}
	return resp.Token, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var resp documentListResponse
	if err := c.do(ctx, http.MethodGet, "/documents", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	var resp documentResponse
	if err := c.do(ctx, http.MethodGet, "/documents/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) CreateDocument(ctx context.Context, title, content string) (*models.Document, error) {
	var resp documentResponse
	if err := c.do(ctx, http.MethodPost, "/documents", documentReq{Title: title, Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) UpdateDocument(ctx context.Context, id string, title, content *string) (*models.Document, error) {
	var resp documentResponse
	if err := c.do(ctx, http.MethodPut, "/documents/"+id, documentPatchReq{Title: title, Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/documents/"+id, nil, nil)
}
