package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-hr-portal/internal/app"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/utils"
	"github.com/MKhiriev/go-hr-portal/models"
)

const (
	avatarFormField = "avatar"
	maxUploadSize   = 6 << 20
)

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	employees, pagination, err := h.services.EmployeeService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WritePaginated(w, employees, pagination)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.services.EmployeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, employee, "")
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var create models.CreateEmployee
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	employee, err := h.services.EmployeeService.Create(r.Context(), create)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("employee_id", employee.ID).Msg("employee created")
	utils.WriteEnvelope(w, http.StatusCreated, employee, app.MsgEmployeeCreated)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var update models.UpdateEmployee
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	employee, err := h.services.EmployeeService.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, employee, app.MsgEmployeeUpdated)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.services.EmployeeService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("employee_id", id).Msg("employee deleted")
	utils.WriteEnvelope(w, http.StatusOK, nil, app.MsgEmployeeDeleted)
}

func (h *Handler) employeeStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.EmployeeService.Statistics(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, stats, "")
}

// exportEmployees renders the whole CSV before writing so a failure can
// still be reported with a proper status.
func (h *Handler) exportEmployees(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err = h.services.EmployeeService.ExportCSV(r.Context(), filter, &buf); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err = buf.WriteTo(w); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write export")
	}
}

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile(avatarFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			err = ErrNoAvatarFile
		} else {
			err = fmt.Errorf("%w: %w", ErrNoAvatarFile, err)
		}
		writeError(w, r, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrNoAvatarFile, err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	avatar, err := h.services.EmployeeService.SaveAvatar(r.Context(), models.AvatarFile{
		EmployeeID:  chi.URLParam(r, "id"),
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, avatar, app.MsgAvatarUploaded)
}

func (h *Handler) getAvatar(w http.ResponseWriter, r *http.Request) {
	avatar, err := h.services.EmployeeService.Avatar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", avatar.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(avatar.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(avatar.Data)
}

func filterFromQuery(q url.Values) (models.EmployeeFilter, error) {
	filter := models.EmployeeFilter{
		Search:     q.Get("search"),
		Department: q.Get("department"),
		Status:     models.EmployeeStatus(q.Get("status")),
		SortBy:     q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
	}

	var err error
	if filter.Page, err = intParam(q, "page"); err != nil {
		return models.EmployeeFilter{}, err
	}
	if filter.PageSize, err = intParam(q, "pageSize"); err != nil {
		return models.EmployeeFilter{}, err
	}

	return filter, nil
}

func intParam(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQuery, key)
	}
	return n, nil
}
