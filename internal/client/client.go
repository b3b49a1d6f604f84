package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoRemote indicates no receive endpoint is configured.
var ErrNoRemote = errors.New("no remote URL configured (set SHOWBOAT_URL or client.remote_url)")

// Client talks to a remote receive endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New validates the remote URL and constructs a client.
func New(remoteURL string) (*Client, error) {
	trimmed := strings.TrimSpace(remoteURL)
	if trimmed == "" {
		return nil, ErrNoRemote
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse remote URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("remote URL %q must be http or https", trimmed)
	}
	return &Client{
		endpoint:   trimmed,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Send posts one command with url-encoded fields. Empty field values are
// omitted from the body.
func (c *Client) Send(ctx context.Context, documentID, command string, fields map[string]string) error {
	form := url.Values{}
	form.Set("uuid", documentID)
	form.Set("command", command)
	for key, value := range fields {
		if value != "" {
			form.Set(key, value)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

// SendImage posts an image command as a multipart form with the binary
// payload in the "image" part.
func (c *Client) SendImage(ctx context.Context, documentID, filename, alt string, image []byte) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"uuid":     documentID,
		"command":  "image",
		"filename": filename,
	}
	if alt != "" {
		fields["alt"] = alt
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write field %s: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return fmt.Errorf("write image part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post command: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK {
		return nil
	}

	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var remote struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &remote); err == nil && remote.Error != "" {
		return fmt.Errorf("server rejected command (%d): %s", resp.StatusCode, remote.Error)
	}
	return fmt.Errorf("server rejected command: status %d", resp.StatusCode)
}
