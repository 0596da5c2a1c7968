package reporthandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pulse/internal/domain/report"
	"pulse/internal/platform/metrics"
	"pulse/internal/platform/pdf"
	"pulse/internal/platform/requestctx"
	"pulse/internal/transport/http/api"
)

type Handler struct {
	Service *report.Service
	Metrics *metrics.Collector
}

func NewHandler(service *report.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

type createRequest struct {
	ExaminationID string `json:"examinationId"`
	Name          string `json:"name"`
	Description   string `json:"description"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if payload.ExaminationID == "" || payload.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "examinationId and name are required", requestctx.GetRequestID(r.Context()))
		return
	}

	rep, err := h.Service.Create(r.Context(), payload.ExaminationID, payload.Name, payload.Description)
	if err != nil {
		h.Metrics.ReportFailed()
		switch {
		case errors.Is(err, report.ErrExaminationNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "examination not found", requestctx.GetRequestID(r.Context()))
		case errors.Is(err, report.ErrNoRespondents):
			api.Fail(w, http.StatusUnprocessableEntity, "no_respondents", "examination yields no usable respondents", requestctx.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to generate report", requestctx.GetRequestID(r.Context()))
		}
		return
	}

	h.Metrics.ReportGenerated()
	api.Created(w, rep, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	reports, err := h.Service.List(r.Context(), limit, offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list reports", requestctx.GetRequestID(r.Context()))
		return
	}
	if reports == nil {
		reports = []report.Report{}
	}
	api.Success(w, reports, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "report not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "get_failed", "failed to load report", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rep, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandlePDF(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "report not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "get_failed", "failed to load report", requestctx.GetRequestID(r.Context()))
		return
	}

	doc, err := pdf.Render(rep)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "render_failed", "failed to render report", requestctx.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Name+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 50
	offset = 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
