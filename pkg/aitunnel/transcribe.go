package aitunnel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
)

// Transcribe converts an audio clip to text. When the endpoint rejects the
// declared format the clip is resent labelled as mp3 and then wav.
func (c *Client) Transcribe(ctx context.Context, req *TranscriptionRequest) (string, error) {
	if len(req.Audio) == 0 {
		return "", fmt.Errorf("audio is empty")
	}

	var lastErr error
	for _, format := range formatsToTry(req.Format) {
		text, err := c.transcribe(ctx, req, format)
		if err == nil {
			return strings.TrimSpace(text), nil
		}
		lastErr = err

		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode >= 500 {
			break
		}
	}
	return "", lastErr
}

func formatsToTry(format string) []string {
	format = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
	out := make([]string, 0, 3)
	for _, f := range []string{format, "mp3", "wav"} {
		if f == "" {
			continue
		}
		dup := false
		for _, seen := range out {
			if seen == f {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}

func (c *Client) transcribe(ctx context.Context, req *TranscriptionRequest, format string) (string, error) {
	model := req.Model
	if model == "" {
		model = c.transcriptionModel
	}
	language := req.Language
	if language == "" {
		language = c.language
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("model", model); err != nil {
		return "", fmt.Errorf("failed to write form: %w", err)
	}
	if err := w.WriteField("language", language); err != nil {
		return "", fmt.Errorf("failed to write form: %w", err)
	}
	part, err := w.CreateFormFile("file", "voice."+format)
	if err != nil {
		return "", fmt.Errorf("failed to write form: %w", err)
	}
	if _, err := part.Write(req.Audio); err != nil {
		return "", fmt.Errorf("failed to write audio: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	respBody, err := c.do(httpReq)
	if err != nil {
		return "", err
	}

	var result transcriptionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Text, nil
}
