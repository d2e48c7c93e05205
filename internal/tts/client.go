// Package tts calls out to an external text-to-speech provider. The
// default endpoint is the free Google Translate TTS service, which needs
// no API key.
package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Synthesizer converts text in a given language into spoken audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, langCode string) ([]byte, error)
}

// languageCodes maps target-language names onto TTS language codes.
var languageCodes = map[string]string{
	"Spanish":  "es",
	"French":   "fr",
	"German":   "de",
	"Italian":  "it",
	"Japanese": "ja",
	"Korean":   "ko",
	"Chinese":  "zh-cn",
}

const defaultLanguageCode = "es"

// LanguageCode maps a language name to its TTS code, defaulting to
// Spanish for unknown languages.
func LanguageCode(language string) string {
	if code, ok := languageCodes[language]; ok {
		return code
	}
	return defaultLanguageCode
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Synthesize fetches MP3 audio for the given text. The call is blocking
// and best-effort; callers degrade to a textual fallback on error.
func (c *Client) Synthesize(ctx context.Context, text, langCode string) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", langCode)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("tts: failed to create request: %w", err)
	}
	// The endpoint rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts: failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts: unexpected status code %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tts: failed to read audio body: %w", err)
	}
	return audio, nil
}
