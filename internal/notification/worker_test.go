package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// recordingMailer records sends and optionally fails.
type recordingMailer struct {
	mu    sync.Mutex
	sends []recordedSend
	err   error
}

type recordedSend struct {
	to       string
	template string
	data     map[string]interface{}
}

func (m *recordingMailer) Send(_ context.Context, to, templateName string, data map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, recordedSend{to: to, template: templateName, data: data})
	return m.err
}

func (m *recordingMailer) recorded() []recordedSend {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]recordedSend(nil), m.sends...)
}

func testJob() EmailJob {
	return EmailJob{
		To:       "ada@example.com",
		UserName: "Ada Lovelace",
		PitchID:  "pitch-1",
		Idea:     "Solar kiosks",
		Summary:  "A generated pitch about solar kiosks.",
	}
}

func TestWorker_SendsQueuedJob(t *testing.T) {
	m := &recordingMailer{}
	w := NewWorker(m, zaptest.NewLogger(t), "http://localhost:5173", 1)

	w.Start()
	require.True(t, w.Queue(testJob()))
	w.Stop()

	sends := m.recorded()
	require.Len(t, sends, 1)
	assert.Equal(t, "ada@example.com", sends[0].to)
	assert.Equal(t, "http://localhost:5173/GeneratedPitch/pitch-1", sends[0].data["link"])
	assert.Equal(t, "Ada Lovelace", sends[0].data["userName"])
}

func TestWorker_SendFailureIsSwallowed(t *testing.T) {
	m := &recordingMailer{err: errors.New("SES rejected")}
	w := NewWorker(m, zaptest.NewLogger(t), "http://localhost:5173", 1)

	w.Start()
	require.True(t, w.Queue(testJob()))

	// Stop drains the queue; a failed send must not panic or block.
	w.Stop()

	assert.Len(t, m.recorded(), 1)
}

func TestWorker_SkipsJobWithoutRecipient(t *testing.T) {
	m := &recordingMailer{}
	w := NewWorker(m, zaptest.NewLogger(t), "http://localhost:5173", 1)

	job := testJob()
	job.To = ""

	w.Start()
	require.True(t, w.Queue(job))
	w.Stop()

	assert.Empty(t, m.recorded())
}

func TestWorker_QueueAfterStopIsRefused(t *testing.T) {
	m := &recordingMailer{}
	w := NewWorker(m, zaptest.NewLogger(t), "http://localhost:5173", 1)

	w.Start()
	w.Stop()

	assert.False(t, w.Queue(testJob()), "stopped worker must refuse jobs, not panic")
	assert.Empty(t, m.recorded())
}

func TestWorker_QueueBeforeStartIsRefused(t *testing.T) {
	m := &recordingMailer{}
	w := NewWorker(m, zaptest.NewLogger(t), "http://localhost:5173", 1)

	assert.False(t, w.Queue(testJob()))
}

func TestWorker_TruncatesLongSummary(t *testing.T) {
	m := &recordingMailer{}
	w := NewWorker(m, zaptest.NewLogger(t), "http://localhost:5173", 1)

	job := testJob()
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'a'
	}
	job.Summary = string(long)

	w.Start()
	require.True(t, w.Queue(job))
	w.Stop()

	sends := m.recorded()
	require.Len(t, sends, 1)
	summary, ok := sends[0].data["summary"].(string)
	require.True(t, ok)
	assert.Len(t, summary, 203, "200 characters plus ellipsis")
}
