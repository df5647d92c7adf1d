package notification

import (
	"context"
	"sync"

	"pitchcraft-backend/pkg/mailer"

	"go.uber.org/zap"
)

// EmailJob is a queued request to send the one-time pitch-ready email.
type EmailJob struct {
	To       string
	UserName string
	PitchID  string
	Idea     string
	Summary  string
}

// Worker delivers notification emails in the background. Dispatch is
// best-effort: a failed send is logged and dropped, never retried and never
// surfaced to the requesting user.
type Worker struct {
	mailer      mailer.Mailer
	logger      *zap.Logger
	appBaseURL  string
	jobQueue    chan EmailJob
	workerWg    sync.WaitGroup
	workerCount int
	started     bool
	mu          sync.Mutex
}

// NewWorker creates a notification worker pool.
func NewWorker(m mailer.Mailer, logger *zap.Logger, appBaseURL string, workerCount int) *Worker {
	if workerCount <= 0 {
		workerCount = 2
	}

	return &Worker{
		mailer:      m,
		logger:      logger,
		appBaseURL:  appBaseURL,
		jobQueue:    make(chan EmailJob, 100),
		workerCount: workerCount,
	}
}

// Start launches the workers.
func (w *Worker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return
	}

	for i := 0; i < w.workerCount; i++ {
		w.workerWg.Add(1)
		go w.worker()
	}
	w.started = true
	w.logger.Info("notification workers started", zap.Int("count", w.workerCount))
}

// Stop drains the queue and stops all workers.
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.started = false
	close(w.jobQueue)
	w.mu.Unlock()

	w.workerWg.Wait()
	w.logger.Info("notification workers stopped")
}

// Queue enqueues a job without blocking. Returns false when the worker is
// stopped or the queue is full; the caller treats that as a swallowed
// best-effort failure.
func (w *Worker) Queue(job EmailJob) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		w.logger.Warn("notification worker not running, dropping email", zap.String("pitchId", job.PitchID))
		return false
	}

	select {
	case w.jobQueue <- job:
		return true
	default:
		w.logger.Warn("notification queue full, dropping email", zap.String("pitchId", job.PitchID))
		return false
	}
}

func (w *Worker) worker() {
	defer w.workerWg.Done()

	for job := range w.jobQueue {
		w.processJob(job)
	}
}

func (w *Worker) processJob(job EmailJob) {
	if w.mailer == nil || job.To == "" {
		return
	}

	data := map[string]interface{}{
		"userName": job.UserName,
		"idea":     job.Idea,
		"summary":  mailer.TruncateSummary(job.Summary, 200),
		"link":     w.appBaseURL + "/GeneratedPitch/" + job.PitchID,
	}

	if err := w.mailer.Send(context.Background(), job.To, mailer.TemplatePitchReady, data); err != nil {
		w.logger.Error("pitch-ready email failed",
			zap.String("pitchId", job.PitchID),
			zap.Error(err),
		)
		return
	}

	w.logger.Info("pitch-ready email sent", zap.String("pitchId", job.PitchID))
}
