package partners

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/httpx"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/middleware"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/transport"
	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("partner list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("partner list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("partner create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("partner create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	partner, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, ErrDuplicateCode) {
			log.Warn("partner create: duplicate code", slog.String("code", req.Code))
			transport.WriteError(w, http.StatusConflict, ErrDuplicateCode.Error(), nil)
			return
		}
		log.Error("partner create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("partner create: ok", slog.String("code", partner.Code))
	transport.WriteJSON(w, http.StatusCreated, partner)
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
