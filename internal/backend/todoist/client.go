// Package todoist implements the service.Service interface using the Todoist REST API.
package todoist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"todoist/internal/config"
	"todoist/internal/priority"
	"todoist/internal/service"
)

const (
	// APITimeout is the timeout for a single API call.
	APITimeout = 15 * time.Second

	// PageLimit is the page size requested from list endpoints.
	PageLimit = 200

	// UserAgent identifies this client to the API.
	UserAgent = "todoist-cli"

	// maxErrorBody bounds how much of an error body is echoed to the user.
	maxErrorBody = 200
)

// Client implements service.Service against the Todoist API.
type Client struct {
	http    *http.Client
	baseURL string
	log     *log.Logger
}

// New creates a client that authenticates every request with cfg.Token as a
// bearer token. Returns config.ErrMissingToken if no token is set.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Client, error) {
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.Token,
		TokenType:   "Bearer",
	})
	httpClient := oauth2.NewClient(ctx, tokenSource)

	return NewWithHTTPClient(httpClient, cfg.APIURL, logger), nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
// The HTTP client is responsible for authentication.
func NewWithHTTPClient(httpClient *http.Client, baseURL string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New()
		logger.SetOutput(io.Discard)
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger,
	}
}

// ListTasks returns active tasks in API order.
func (c *Client) ListTasks(ctx context.Context, filter service.TaskFilter) ([]service.Task, error) {
	query := url.Values{}
	if filter.ProjectID != "" {
		query.Set("project_id", filter.ProjectID)
	}

	items, err := listAll[apiTask](ctx, c, "/tasks", query)
	if err != nil {
		return nil, err
	}

	result := make([]service.Task, 0, len(items))
	for _, t := range items {
		result = append(result, t.toService())
	}
	return result, nil
}

// ListProjects returns all projects in API order.
func (c *Client) ListProjects(ctx context.Context) ([]service.Project, error) {
	items, err := listAll[apiProject](ctx, c, "/projects", nil)
	if err != nil {
		return nil, err
	}

	result := make([]service.Project, 0, len(items))
	for _, p := range items {
		result = append(result, p.toService())
	}
	return result, nil
}

// ResolveProject finds a project by name (case-insensitive, trimmed).
func (c *Client) ResolveProject(ctx context.Context, name string) (service.Project, error) {
	name = strings.TrimSpace(name)

	projects, err := c.ListProjects(ctx)
	if err != nil {
		return service.Project{}, err
	}

	// Projects come back in server order; the first match wins
	for _, p := range projects {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return p, nil
		}
	}
	return service.Project{}, fmt.Errorf("project %w: %s", service.ErrNotFound, name)
}

// GetTask returns a single task.
func (c *Client) GetTask(ctx context.Context, taskID string) (service.Task, error) {
	var t apiTask
	if err := c.do(ctx, http.MethodGet, taskPath(taskID), nil, nil, &t); err != nil {
		return service.Task{}, err
	}
	return t.toService(), nil
}

// CreateTask creates a task. A zero priority is sent as the default.
func (c *Client) CreateTask(ctx context.Context, task service.NewTask) (service.Task, error) {
	req := createTaskRequest{
		Content:   task.Content,
		Priority:  task.Priority,
		DueString: task.DueString,
		ProjectID: task.ProjectID,
	}
	if req.Priority == 0 {
		req.Priority = priority.Default
	}

	var t apiTask
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, req, &t); err != nil {
		return service.Task{}, err
	}
	return t.toService(), nil
}

// UpdateTask sends only the fields set in update.
func (c *Client) UpdateTask(ctx context.Context, taskID string, update service.TaskUpdate) (service.Task, error) {
	req := updateTaskRequest{
		Content:     update.Content,
		Description: update.Description,
		DueString:   update.DueString,
		Priority:    update.Priority,
	}

	var t apiTask
	if err := c.do(ctx, http.MethodPost, taskPath(taskID), nil, req, &t); err != nil {
		return service.Task{}, err
	}
	return t.toService(), nil
}

// CompleteTask closes a task.
func (c *Client) CompleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodPost, taskPath(taskID)+"/close", nil, nil, nil)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodDelete, taskPath(taskID), nil, nil, nil)
}

func taskPath(taskID string) string {
	return "/tasks/" + url.PathEscape(taskID)
}

// listAll follows next_cursor until the API reports no further pages.
// A cursor the server already handed out ends the walk with ErrRemote.
func listAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("limit", fmt.Sprint(PageLimit))

	var all []T
	seen := make(map[string]bool)
	for {
		var p page[T]
		if err := c.do(ctx, http.MethodGet, path, q, nil, &p); err != nil {
			return nil, err
		}
		all = append(all, p.Results...)

		if p.NextCursor == nil || *p.NextCursor == "" {
			return all, nil
		}
		cursor := *p.NextCursor
		if seen[cursor] {
			return nil, fmt.Errorf("%w: pagination cursor repeated: %s", service.ErrRemote, cursor)
		}
		seen[cursor] = true
		q.Set("cursor", cursor)
	}
}

// do performs one API request. body, if non-nil, is sent as JSON; out, if
// non-nil, receives the decoded response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := sonic.ConfigStd.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", service.ErrRequest, err)
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	entry := c.log.WithFields(log.Fields{"method": method, "path": path})
	start := time.Now()

	res, err := c.http.Do(req)
	if err != nil {
		entry.WithError(err).Debug("api request failed")
		return wrapTransportError(err)
	}
	defer res.Body.Close()

	entry.WithFields(log.Fields{
		"status":  res.StatusCode,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("api request")

	if err := googleapi.CheckResponse(res); err != nil {
		return wrapError(err)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := sonic.ConfigStd.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", service.ErrParse, err)
	}
	return nil
}

// wrapTransportError maps a failed round trip to ErrConnectivity.
func wrapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out", service.ErrConnectivity)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: request cancelled", service.ErrConnectivity)
	}
	return fmt.Errorf("%w: %v", service.ErrConnectivity, err)
}

// wrapError maps a non-2xx response to a service error category.
func wrapError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	var kind error
	switch code := apiErr.Code; {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		kind = service.ErrAuth
	case code == http.StatusNotFound:
		kind = service.ErrNotFound
	case code == http.StatusTooManyRequests:
		kind = service.ErrRateLimited
	case code >= http.StatusInternalServerError:
		kind = service.ErrRemote
	default:
		kind = service.ErrRequest
	}

	if msg := errorMessage(apiErr); msg != "" {
		return fmt.Errorf("%w (HTTP %d): %s", kind, apiErr.Code, msg)
	}
	return fmt.Errorf("%w (HTTP %d)", kind, apiErr.Code)
}

// errorMessage extracts a readable message from an error response body.
// Todoist returns either a JSON object with an "error" field or plain text.
func errorMessage(apiErr *googleapi.Error) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}

	var body apiErrorBody
	if err := sonic.ConfigStd.UnmarshalFromString(apiErr.Body, &body); err == nil && body.Error != "" {
		return body.Error
	}

	msg := strings.Join(strings.Fields(apiErr.Body), " ")
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody] + "..."
	}
	return msg
}
