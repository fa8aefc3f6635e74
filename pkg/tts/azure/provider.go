// Package azure implements tts.Provider for Azure Speech.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"orrerygo/pkg/config"
	"orrerygo/pkg/request"
	"orrerygo/pkg/tracker"
	"orrerygo/pkg/tts"
)

// Provider implements tts.Provider for Azure Speech.
type Provider struct {
	key        string
	region     string
	voiceID    string
	localeProv tts.LocaleProvider
	client     *http.Client
	reqClient  *request.Client
	url        string
	voicesURL  string
	tracker    *tracker.Tracker
	rate       float64
	pitch      float64
}

// NewProvider creates a new Azure Speech TTS provider. reqClient is used for
// the cacheable voice-list endpoint and may be nil.
func NewProvider(cfg config.AzureSpeechConfig, localeProv tts.LocaleProvider, reqClient *request.Client, t *tracker.Tracker, rate, pitch float64) *Provider {
	url := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", cfg.Region)
	voicesURL := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/voices/list", cfg.Region)
	if rate <= 0 {
		rate = 1.0
	}
	if pitch <= 0 {
		pitch = 1.0
	}
	return &Provider{
		key:        cfg.Key,
		region:     cfg.Region,
		voiceID:    cfg.VoiceID,
		localeProv: localeProv,
		client:     &http.Client{},
		reqClient:  reqClient,
		url:        url,
		voicesURL:  voicesURL,
		tracker:    t,
		rate:       rate,
		pitch:      pitch,
	}
}

// Synthesize generates speech from text using Azure Speech.
func (p *Provider) Synthesize(ctx context.Context, text, voiceID, outputPath string) (string, error) {
	// 1. Determine Voice ID
	vid := p.voiceID
	if voiceID != "" {
		vid = voiceID
	}
	if vid == "" {
		return "", fmt.Errorf("no voice ID configured for Azure Speech")
	}

	// 2. Build SSML
	ssml := p.buildSSML(ctx, vid, text)

	// 3. Execute Request
	req, err := http.NewRequestWithContext(ctx, "POST", p.url, bytes.NewBufferString(ssml))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Ocp-Apim-Subscription-Key", p.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", "audio-24khz-160kbitrate-mono-mp3")
	req.Header.Set("User-Agent", "Orrery")

	resp, err := p.client.Do(req)
	if err != nil {
		tts.Log("AZURE", ssml, 0, err)
		if p.tracker != nil {
			p.tracker.TrackAPIFailure("azure-speech")
		}
		return "", fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		tts.Log("AZURE", ssml, resp.StatusCode, nil)
		body, err := io.ReadAll(resp.Body)
		bodyStr := string(body)
		if err != nil {
			bodyStr = fmt.Sprintf("[failed to read body: %v]", err)
		}
		if bodyStr == "" {
			bodyStr = "[empty body]"
		}

		if p.tracker != nil {
			p.tracker.TrackAPIFailure("azure-speech")
		}

		// Return FatalError for 4xx/5xx to trigger fallback
		errMsg := fmt.Sprintf("azure speech api error (status %d): %s", resp.StatusCode, bodyStr)
		return "", tts.NewFatalError(resp.StatusCode, errMsg)
	}

	// 4. Save Output
	tts.Log("AZURE", ssml, 200, nil)
	ext := "mp3"
	filename := outputPath
	if filepath.Ext(filename) != "."+ext {
		filename = filename + "." + ext
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		if p.tracker != nil {
			p.tracker.TrackAPIFailure("azure-speech")
		}
		return "", fmt.Errorf("failed to write audio to file: %w", err)
	}

	if p.tracker != nil {
		p.tracker.TrackAPISuccess("azure-speech")
	}

	return ext, nil
}

// azureVoice is one entry of the voices/list endpoint.
type azureVoice struct {
	Name      string `json:"Name"`
	LocalName string `json:"LocalName"`
	ShortName string `json:"ShortName"`
	Locale    string `json:"Locale"`
	VoiceType string `json:"VoiceType"`
}

// Voices lists the voices available in the configured region. The response
// is cached because the list changes rarely and is several hundred entries.
func (p *Provider) Voices(ctx context.Context) ([]tts.Voice, error) {
	if p.reqClient == nil {
		return []tts.Voice{
			{ID: p.voiceID, Name: "Configured Azure Voice", Language: "en-US", IsNeural: true},
		}, nil
	}

	headers := map[string]string{"Ocp-Apim-Subscription-Key": p.key}
	body, err := p.reqClient.GetWithHeaders(ctx, p.voicesURL, headers, "azure:voices:"+p.region)
	if err != nil {
		return nil, fmt.Errorf("fetching voice list: %w", err)
	}

	var raw []azureVoice
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing voice list: %w", err)
	}

	voices := make([]tts.Voice, 0, len(raw))
	for _, v := range raw {
		voices = append(voices, tts.Voice{
			ID:       v.ShortName,
			Name:     v.LocalName,
			Language: v.Locale,
			IsNeural: v.VoiceType == "Neural",
		})
	}
	return voices, nil
}

func (p *Provider) buildSSML(ctx context.Context, vid, text string) string {
	locale := "en-US"
	if p.localeProv != nil {
		locale = p.localeProv.ActiveLocale(ctx)
	}

	// Scripts are plain prose, never SSML, so escape everything.
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	escaped := replacer.Replace(tts.StripSpeakerLabels(text))

	return fmt.Sprintf(
		`<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='%s'><voice name='%s'><prosody rate='%s' pitch='%s'>%s</prosody></voice></speak>`,
		locale, vid, tts.ProsodyPercent(p.rate), tts.ProsodyPercent(p.pitch), escaped,
	)
}
