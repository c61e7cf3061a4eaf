package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/paakwasi317/conference-tracker/internal/application"
	"github.com/paakwasi317/conference-tracker/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	uploadField     = "file"

	msgInvalidCSV = "Invalid CSV file. Please upload a valid one or Contact support."
	msgEmptyCSV   = "Empty CSV file. Please upload a valid one."
	msgTooLarge   = "CSV file is too large."
	msgMissing    = "No CSV file uploaded. Please attach one in the \"file\" field."
	msgInternal   = "Something went wrong while building the schedule. Please try again later."
)

type Scheduler interface {
	Schedule(ctx context.Context, r io.Reader) (application.Schedule, error)
}

type Options struct {
	MaxUploadBytes int64
	Metrics        *Metrics
	// Gatherer backs /metrics; nil leaves the route unregistered.
	Gatherer prometheus.Gatherer
}

type Handler struct {
	scheduler Scheduler
	logger    zerolog.Logger
	opts      Options
}

func NewHandler(scheduler Scheduler, logger zerolog.Logger, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}

	return &Handler{scheduler: scheduler, logger: logger, opts: opts}
}

// Routes wires the tracker endpoints onto a new mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tracker", h.index)
	mux.HandleFunc("POST /tracker/uploadfile", h.upload)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	if h.opts.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(h.opts.Gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}

func (h *Handler) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		h.logger.Error().Err(err).Msg("render upload page")
	}
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, requestID)
	log := h.logger.With().Str("request_id", requestID).Logger()

	if r.ContentLength > h.opts.MaxUploadBytes {
		log.Warn().Int64("content_length", r.ContentLength).Msg("upload rejected")
		h.fail(w, http.StatusRequestEntityTooLarge, outcomeTooLarge, msgTooLarge)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			log.Warn().Err(err).Msg("upload rejected")
			h.fail(w, http.StatusRequestEntityTooLarge, outcomeTooLarge, msgTooLarge)
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			log.Warn().Err(err).Msg("upload rejected")
			h.fail(w, http.StatusBadRequest, outcomeMissing, msgMissing)
		default:
			log.Error().Err(err).Msg("read upload")
			h.fail(w, http.StatusInternalServerError, outcomeInternal, msgInternal)
		}
		return
	}
	defer file.Close()

	log = log.With().Str("filename", header.Filename).Int64("size", header.Size).Logger()

	schedule, err := h.scheduler.Schedule(r.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			log.Warn().Err(err).Msg("invalid talk list")
			h.fail(w, http.StatusBadRequest, outcomeInvalid, msgInvalidCSV)
		case errors.Is(err, domain.ErrEmptyInput):
			log.Warn().Err(err).Msg("empty talk list")
			h.fail(w, http.StatusBadRequest, outcomeEmpty, msgEmptyCSV)
		default:
			log.Error().Err(err).Msg("build schedule")
			h.fail(w, http.StatusInternalServerError, outcomeInternal, msgInternal)
		}
		return
	}

	if n := len(schedule.Unscheduled); n > 0 {
		tooLong, overTrackLimit := schedule.UnscheduledBreakdown()
		log.Warn().
			Int("count", n).
			Int("too_long", tooLong).
			Int("over_track_limit", overTrackLimit).
			Msg("talks left unscheduled")
	}
	log.Info().Int("tracks", len(schedule.Tracks)).Msg("schedule built")

	h.opts.Metrics.recordOutcome(outcomeOK)
	h.opts.Metrics.recordSchedule(len(schedule.Tracks), len(schedule.Unscheduled))
	writeJSON(w, http.StatusOK, schedule)
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) fail(w http.ResponseWriter, status int, outcome, message string) {
	h.opts.Metrics.recordOutcome(outcome)
	writeJSON(w, status, errorResponse{Detail: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Conference Track Management</title></head>
<body>
<h1>Conference Track Management</h1>
<p>Upload a CSV file with one talk per line, e.g. <code>Writing Fast Tests Against Enterprise Rails 60min</code>.</p>
<form action="/tracker/uploadfile" method="post" enctype="multipart/form-data">
<input type="file" name="file" accept=".csv,text/csv,text/plain">
<button type="submit">Build schedule</button>
</form>
</body>
</html>
`))
