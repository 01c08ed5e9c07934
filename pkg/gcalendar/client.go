package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

const (
	defaultCalendarID = "primary"
	defaultTaskListID = "@default"
	tokenFile         = "token.json"
)

// Scopes are the OAuth scopes the client needs.
var Scopes = []string{calendar.CalendarEventsScope, tasks.TasksScope}

// Client wraps the Google Calendar and Google Tasks API services.
type Client struct {
	service *calendar.Service
	tasks   *tasks.Service
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	tasksSvc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{service: svc, tasks: tasksSvc}, nil
}

// NewClientFromCredentialsFile creates a client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a client from raw credentials JSON:
// a Service Account key, or OAuth desktop credentials plus a token.json
// produced by scripts/gcal-auth.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, Scopes...)
	if err == nil {
		return newClient(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       Scopes,
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile(tokenFile)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: run scripts/gcal-auth or use a Service Account")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    created.Location,
	}, nil
}

// CreateTask inserts a task into a Google Tasks list. Google keeps only the
// date part of Due.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	task := &tasks.Task{
		Title: req.Title,
		Notes: req.Notes,
	}
	if req.Due != nil {
		task.Due = req.Due.UTC().Format(time.RFC3339)
	}

	listID := req.TaskListID
	if listID == "" {
		listID = defaultTaskListID
	}

	created, err := c.tasks.Tasks.Insert(listID, task).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	out := &Task{
		ID:       created.Id,
		Title:    created.Title,
		Notes:    created.Notes,
		SelfLink: created.SelfLink,
		WebLink:  created.WebViewLink,
	}
	if created.Due != "" {
		if due, err := time.Parse(time.RFC3339, created.Due); err == nil {
			out.Due = &due
		}
	}
	return out, nil
}
