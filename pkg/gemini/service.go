package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNoText is returned when the API responds successfully but no generated
// text can be extracted from any known response shape.
var ErrNoText = errors.New("gemini returned no text")

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type GeminiService struct {
	ApiKey  string
	BaseURL string
	Model   string
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		ApiKey:  apiKey,
		BaseURL: defaultBaseURL,
		Model:   "gemini-2.5-flash",
	}
}

// PitchPrompt builds the generation prompt shared by all providers. The
// section headings are fixed so the rendered report and the PDF export can
// rely on them.
func PitchPrompt(idea, description, industry, detailLevel string) string {
	if detailLevel == "" {
		detailLevel = "short"
	}
	return fmt.Sprintf(`Generate a %s startup pitch.
Idea: %s
Description: %s
Industry: %s

Structure the pitch with exactly these section headings:
## The Problem
## The Solution
## Why Now
## The Ask

Make it catchy, professional, and clear.`, detailLevel, idea, description, industry)
}

// GeneratePitch calls the generateContent endpoint once and extracts plain
// text from the response. No retry is attempted.
func (g *GeminiService) GeneratePitch(ctx context.Context, idea, description, industry, detailLevel string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.BaseURL, g.Model, g.ApiKey)

	prompt := PitchPrompt(idea, description, industry, detailLevel)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	return DecodeText(respBody)
}

// generateContentResponse is the current candidates/content/parts shape.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// legacyTextResponse covers the older PaLM-style shapes: a top-level
// output_text field, or candidates carrying an output string.
type legacyTextResponse struct {
	OutputText string `json:"output_text"`
	Candidates []struct {
		Output string `json:"output"`
	} `json:"candidates"`
}

// DecodeText extracts generated text from a response body, trying each known
// response shape in turn and failing with ErrNoText when none carries text.
func DecodeText(body []byte) (string, error) {
	var modern generateContentResponse
	if err := json.Unmarshal(body, &modern); err == nil {
		for _, cand := range modern.Candidates {
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					return part.Text, nil
				}
			}
		}
	}

	var legacy legacyTextResponse
	if err := json.Unmarshal(body, &legacy); err == nil {
		if legacy.OutputText != "" {
			return legacy.OutputText, nil
		}
		for _, cand := range legacy.Candidates {
			if cand.Output != "" {
				return cand.Output, nil
			}
		}
	}

	return "", ErrNoText
}
