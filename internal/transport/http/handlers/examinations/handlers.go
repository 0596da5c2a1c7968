package examinationhandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pulse/internal/domain/examination"
	"pulse/internal/platform/requestctx"
	"pulse/internal/transport/http/api"
)

const maxUploadMemory = 8 << 20

type Handler struct {
	Service *examination.Service
}

func NewHandler(service *examination.Service) *Handler {
	return &Handler{Service: service}
}

// HandleUpload accepts a multipart form with the survey CSV under "file"
// plus optional "name" and "description" fields.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid multipart form", requestctx.GetRequestID(r.Context()))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "missing_file", "survey file is required", requestctx.GetRequestID(r.Context()))
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	exam, err := h.Service.Upload(r.Context(), name, r.FormValue("description"), header.Filename, file)
	if err != nil {
		api.Fail(w, http.StatusUnprocessableEntity, "upload_failed", err.Error(), requestctx.GetRequestID(r.Context()))
		return
	}

	api.Created(w, exam, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	exams, err := h.Service.List(r.Context(), limit, offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list examinations", requestctx.GetRequestID(r.Context()))
		return
	}
	if exams == nil {
		exams = []examination.Examination{}
	}
	api.Success(w, exams, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	exam, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == examination.ErrNotFound {
			api.Fail(w, http.StatusNotFound, "not_found", "examination not found", requestctx.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "get_failed", "failed to load examination", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, exam, requestctx.GetRequestID(r.Context()))
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
