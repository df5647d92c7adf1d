package mailer

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		data map[string]interface{}
		want string
	}{
		{
			"substitutes string values",
			"Hi {{name}}, your {{thing}} is ready",
			map[string]interface{}{"name": "Ada", "thing": "pitch"},
			"Hi Ada, your pitch is ready",
		},
		{
			"substitutes int values",
			"You have {{count}} pitches",
			map[string]interface{}{"count": 3},
			"You have 3 pitches",
		},
		{
			"strips unfilled placeholders",
			"Hi {{name}}, see {{link}}",
			map[string]interface{}{"name": "Ada"},
			"Hi Ada, see ",
		},
		{
			"no placeholders",
			"plain text",
			nil,
			"plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderTemplate(tt.tmpl, tt.data))
		})
	}
}

func TestTruncateSummary(t *testing.T) {
	assert.Equal(t, "short", TruncateSummary("short", 10))
	assert.Equal(t, "abcde...", TruncateSummary("abcdefgh", 5))
	assert.Equal(t, "unchanged", TruncateSummary("unchanged", 0))
}

func TestTruncateSummary_RuneBoundary(t *testing.T) {
	// "é" is two bytes; a byte cut at 4 would land mid-rune
	got := TruncateSummary("abcéfgh", 4)
	assert.Equal(t, "abc...", got)
	assert.True(t, utf8.ValidString(got))

	// Cut right after the full rune keeps it
	got = TruncateSummary("abcéfgh", 5)
	assert.Equal(t, "abcé...", got)
	assert.True(t, utf8.ValidString(got))
}

// capturingSESClient records the last SendEmail input.
type capturingSESClient struct {
	lastInput *ses.SendEmailInput
	err       error
}

func (c *capturingSESClient) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	c.lastInput = params
	if c.err != nil {
		return nil, c.err
	}
	return &ses.SendEmailOutput{}, nil
}

func TestSESMailer_Send(t *testing.T) {
	client := &capturingSESClient{}
	m := NewSESMailerWithClient(client, "no-reply@pitchcraft.app")

	err := m.Send(context.Background(), "ada@example.com", TemplatePitchReady, map[string]interface{}{
		"userName": "Ada",
		"idea":     "Solar kiosks",
		"summary":  "A short summary",
		"link":     "http://localhost:5173/GeneratedPitch/pitch-1",
	})
	require.NoError(t, err)
	require.NotNil(t, client.lastInput)

	assert.Equal(t, []string{"ada@example.com"}, client.lastInput.Destination.ToAddresses)
	assert.Equal(t, "no-reply@pitchcraft.app", *client.lastInput.Source)
	assert.Equal(t, "Your PitchCraft pitch for Solar kiosks is ready", *client.lastInput.Message.Subject.Data)

	body := *client.lastInput.Message.Body.Text.Data
	assert.Contains(t, body, "Hi Ada,")
	assert.Contains(t, body, "A short summary")
	assert.Contains(t, body, "/GeneratedPitch/pitch-1")
}

func TestSESMailer_Send_UnknownTemplate(t *testing.T) {
	client := &capturingSESClient{}
	m := NewSESMailerWithClient(client, "no-reply@pitchcraft.app")

	err := m.Send(context.Background(), "ada@example.com", "nope", nil)
	require.Error(t, err)
	assert.Nil(t, client.lastInput, "no API call for an unknown template")
}
