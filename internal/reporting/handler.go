package reporting

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/httpx"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/middleware"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/transport"
)

type Handler struct {
	service  *Service
	location *time.Location
	log      *slog.Logger
}

func NewHandler(service *Service, location *time.Location, log *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		log:      log,
	}
}

// rangeQuery reads start/end/partner from the URL. The end date is widened to
// the last instant of its day so an inclusive date window behaves the way the
// date pickers present it.
func (h *Handler) rangeQuery(r *http.Request) (RangeQuery, error) {
	values := r.URL.Query()

	start, err := httpx.ParseDateParam(values, "start", h.location)
	if err != nil {
		return RangeQuery{}, err
	}
	end, err := httpx.ParseDateParam(values, "end", h.location)
	if err != nil {
		return RangeQuery{}, err
	}
	if end != nil {
		endOfDay := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &endOfDay
	}
	if start != nil && end != nil && end.Before(*start) {
		return RangeQuery{}, errors.New("end date cannot be before start date")
	}

	return RangeQuery{
		Start:   start,
		End:     end,
		Partner: strings.TrimSpace(values.Get("partner")),
	}, nil
}

func (h *Handler) timeseriesQuery(r *http.Request) (TimeseriesQuery, error) {
	rq, err := h.rangeQuery(r)
	if err != nil {
		return TimeseriesQuery{}, err
	}

	granularity, err := ParseGranularity(strings.TrimSpace(r.URL.Query().Get("granularity")))
	if err != nil {
		return TimeseriesQuery{}, err
	}

	return TimeseriesQuery{
		RangeQuery:  rq,
		Dimension:   strings.TrimSpace(r.URL.Query().Get("dimension")),
		Granularity: granularity,
	}, nil
}

func (h *Handler) Timeseries(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	q, err := h.timeseriesQuery(r)
	if err != nil {
		log.Warn("report timeseries: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	series, err := h.service.Timeseries(ctx, q)
	if err != nil {
		h.writeServiceError(w, log, "report timeseries", err)
		return
	}

	log.Info("report timeseries: ok", slog.Int("rows", len(series.Rows)), slog.Int("columns", len(series.Columns)))
	transport.WriteJSON(w, http.StatusOK, series)
}

func (h *Handler) TimeseriesCSV(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	q, err := h.timeseriesQuery(r)
	if err != nil {
		log.Warn("report csv: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	body, err := h.service.TimeseriesCSV(ctx, q)
	if err != nil {
		h.writeServiceError(w, log, "report csv", err)
		return
	}

	log.Info("report csv: ok", slog.Int("bytes", len(body)))
	transport.WriteCSV(w, "lead_report.csv", body)
}

func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	q, err := h.rangeQuery(r)
	if err != nil {
		log.Warn("report top: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	field := strings.TrimSpace(r.URL.Query().Get("field"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.service.Top(ctx, field, q)
	if err != nil {
		h.writeServiceError(w, log, "report top", err)
		return
	}

	log.Info("report top: ok", slog.String("value", result.Value))
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	overview, err := h.service.Overview(ctx)
	if err != nil {
		h.writeServiceError(w, log, "report overview", err)
		return
	}

	log.Info("report overview: ok", slog.Int("total_leads", overview.TotalLeads))
	transport.WriteJSON(w, http.StatusOK, overview)
}

func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	q, err := h.rangeQuery(r)
	if err != nil {
		log.Warn("report payments: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := h.service.Payments(ctx, q)
	if err != nil {
		h.writeServiceError(w, log, "report payments", err)
		return
	}

	log.Info("report payments: ok")
	transport.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidDimension), errors.Is(err, ErrInvalidGranularity):
		log.Warn(op+": invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrFetchFailed):
		log.Error(op+": lead fetch failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadGateway, "failed to load data", nil)
	default:
		log.Error(op+": error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
