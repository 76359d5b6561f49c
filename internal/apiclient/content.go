package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/ziadkadry99/content-studio/internal/content"
)

type promptsRequest struct {
	Count int    `json:"count"`
	Theme string `json:"theme"`
}

type promptsResponse struct {
	Success bool     `json:"success"`
	Prompts []string `json:"prompts"`
	Message string   `json:"message,omitempty"`
}

// GeneratePrompts asks the upstream for count prompt suggestions on theme.
func (c *Client) GeneratePrompts(ctx context.Context, theme string, count int) ([]string, error) {
	var resp promptsResponse
	if err := c.Do(ctx, http.MethodPost, "/api/generate-prompts", promptsRequest{Count: count, Theme: theme}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("generating prompts: %w", ErrUnsuccessful)
	}
	return resp.Prompts, nil
}

// DeleteContent deletes one content item. Redirects are followed, so the
// upstream's post-delete redirect resolves to the dashboard page.
func (c *Client) DeleteContent(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodPost, "/content/"+url.PathEscape(id)+"/delete", nil, nil)
}

type contentResponse struct {
	Success bool           `json:"success"`
	Content content.Detail `json:"content"`
	Message string         `json:"message,omitempty"`
}

// GetContent fetches the full record of one content item.
func (c *Client) GetContent(ctx context.Context, id string) (*content.Detail, error) {
	var resp contentResponse
	if err := c.Do(ctx, http.MethodGet, "/api/content/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		if resp.Message != "" {
			return nil, fmt.Errorf("fetching content %s: %w: %s", id, ErrUnsuccessful, resp.Message)
		}
		return nil, fmt.Errorf("fetching content %s: %w", id, ErrUnsuccessful)
	}
	return &resp.Content, nil
}

type remixRequest struct {
	TargetFormat content.Format `json:"target_format"`
}

type remixResponse struct {
	Success      bool   `json:"success"`
	NewContentID int    `json:"new_content_id"`
	Message      string `json:"message,omitempty"`
}

// Remix asks the upstream to turn content id into a new item of the target
// format. It returns the id of the new item.
func (c *Client) Remix(ctx context.Context, id string, target content.Format) (int, error) {
	if !target.Valid() {
		return 0, fmt.Errorf("remixing content %s: unknown format %q", id, target)
	}
	var resp remixResponse
	if err := c.Do(ctx, http.MethodPost, "/api/remix/"+url.PathEscape(id), remixRequest{TargetFormat: target}, &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		if resp.Message != "" {
			return 0, fmt.Errorf("remixing content %s: %w: %s", id, ErrUnsuccessful, resp.Message)
		}
		return 0, fmt.Errorf("remixing content %s: %w", id, ErrUnsuccessful)
	}
	return resp.NewContentID, nil
}

type calendarResponse struct {
	Success  bool                    `json:"success"`
	Calendar []content.CalendarEntry `json:"calendar"`
}

// ContentCalendar fetches the upstream's dated content suggestions.
func (c *Client) ContentCalendar(ctx context.Context) ([]content.CalendarEntry, error) {
	var resp calendarResponse
	if err := c.Do(ctx, http.MethodGet, "/api/content-calendar", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("fetching content calendar: %w", ErrUnsuccessful)
	}
	return resp.Calendar, nil
}

// Submission is a validated create-content form.
type Submission struct {
	Format    content.Format
	Title     string
	InputText string
	AudioName string
	Audio     io.Reader
}

// SubmitContent posts the create form as multipart data, the same shape a
// browser sends.
func (c *Client) SubmitContent(ctx context.Context, s Submission) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"content_type", string(s.Format)},
		{"title", s.Title},
		{"input_text", s.InputText},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("writing field %s: %w", f[0], err)
		}
	}
	if s.Audio != nil && s.AudioName != "" {
		part, err := mw.CreateFormFile("audio_file", s.AudioName)
		if err != nil {
			return fmt.Errorf("creating audio part: %w", err)
		}
		if _, err := io.Copy(part, s.Audio); err != nil {
			return fmt.Errorf("copying audio: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL("/create"), &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
