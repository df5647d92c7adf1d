package mailer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mailer sends a templated email with named parameters.
type Mailer interface {
	Send(ctx context.Context, to, templateName string, data map[string]interface{}) error
}

// TemplatePitchReady is the one-time notification sent after the first
// successful generation of a pitch.
const TemplatePitchReady = "pitch_ready"

// templates maps template names to subject/body templates with {{name}}
// placeholders.
var templates = map[string]map[string]string{
	TemplatePitchReady: {
		"subject": "Your PitchCraft pitch for {{idea}} is ready",
		"body": "Hi {{userName}},\n\n" +
			"Your AI-generated pitch for \"{{idea}}\" is ready.\n\n" +
			"{{summary}}\n\n" +
			"Read the full pitch here: {{link}}\n\n" +
			"— PitchCraft",
	},
}

// RenderTemplate substitutes {{name}} placeholders from data and strips any
// placeholder left without a value.
func RenderTemplate(tmpl string, data map[string]interface{}) string {
	result := tmpl

	for k, v := range data {
		placeholder := "{{" + k + "}}"
		value := ""
		if s, ok := v.(string); ok {
			value = s
		} else if i, ok := v.(int); ok {
			value = fmt.Sprintf("%d", i)
		} else if v != nil {
			value = fmt.Sprintf("%v", v)
		}
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Remove any remaining placeholders (missing values)
	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		end += start + 2
		result = result[:start] + result[end:]
	}

	return result
}

// TruncateSummary shortens generated text for use inside an email body,
// backing up to a rune boundary so multi-byte characters are never split.
func TruncateSummary(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

func lookupTemplate(name string) (subject, body string, err error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("template not found: %s", name)
	}
	return tmpl["subject"], tmpl["body"], nil
}
