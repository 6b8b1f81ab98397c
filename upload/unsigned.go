package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// unsignedStore posts the document to a preset-authorized multipart
// endpoint. The preset is a revocable token, not a credential; no signing
// happens on the client.
type unsignedStore struct {
	baseURL string
	preset  string
	folder  string
}

type unsignedResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func (s *unsignedStore) put(ctx context.Context, fileName string, content []byte) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("upload endpoint not configured")
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentTypeFor(fileName))
	part, err := form.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}

	form.WriteField("upload_preset", s.preset)
	form.WriteField("folder", s.folder)
	form.WriteField("resource_type", "raw")
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload rejected with status %d: %s", resp.StatusCode, respBody)
	}

	var parsed unsignedResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse upload response: %w", err)
	}
	if parsed.SecureURL != "" {
		return parsed.SecureURL, nil
	}
	if parsed.URL != "" {
		return parsed.URL, nil
	}
	return "", fmt.Errorf("upload response carries no url")
}
