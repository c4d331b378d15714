package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"datacraft/adapters/export"
	"datacraft/domain/core"
	"datacraft/domain/dataset"
	"datacraft/domain/schema"
	apperrors "datacraft/internal/errors"
)

const maxUploadBytes = 32 << 20

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type generateRequest struct {
	Columns  []schema.Column `json:"columns"`
	RowCount int             `json:"rowCount"`
	Seed     *int64          `json:"seed,omitempty"`
}

type generateTemplateRequest struct {
	TemplateID string `json:"templateId"`
	RowCount   int    `json:"rowCount"`
	Seed       *int64 `json:"seed,omitempty"`
}

type generatePromptRequest struct {
	Prompt   string `json:"prompt"`
	RowCount int    `json:"rowCount"`
}

type generateResponse struct {
	Dataset *dataset.Generated `json:"dataset"`
	Stats   dataset.Stats      `json:"stats"`
}

type saveRequest struct {
	OwnerID      string             `json:"ownerId"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	TemplateName string             `json:"templateName,omitempty"`
	Dataset      *dataset.Generated `json:"dataset"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, schema.Templates())
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !s.decode(w, r, &req) {
		return
	}
	ds, stats, err := s.generator.Generate(req.Columns, req.RowCount, req.Seed)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, generateResponse{Dataset: ds, Stats: stats})
}

func (s *Server) handleGenerateTemplate(w http.ResponseWriter, r *http.Request) {
	var req generateTemplateRequest
	if !s.decode(w, r, &req) {
		return
	}
	ds, stats, err := s.generator.GenerateFromTemplate(req.TemplateID, req.RowCount, req.Seed)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, generateResponse{Dataset: ds, Stats: stats})
}

func (s *Server) handleGeneratePrompt(w http.ResponseWriter, r *http.Request) {
	var req generatePromptRequest
	if !s.decode(w, r, &req) {
		return
	}
	ds, stats, err := s.generator.GenerateFromPrompt(r.Context(), req.Prompt, req.RowCount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, generateResponse{Dataset: ds, Stats: stats})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var ds dataset.Generated
	if !s.decode(w, r, &ds) {
		return
	}
	s.writeJSON(w, http.StatusOK, s.generator.Summarize(&ds))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	exporter, err := export.ForFormat(format)
	if err != nil {
		s.writeError(w, apperrors.InvalidInput(err.Error()))
		return
	}

	var ds dataset.Generated
	if !s.decode(w, r, &ds) {
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=dataset.%s", exporter.FileExtension()))
	if err := exporter.Encode(w, &ds); err != nil {
		// Headers are gone; all we can do is log.
		s.log.Error("export %s failed: %v", format, err)
	}
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Dataset == nil {
		s.writeError(w, apperrors.InvalidInput("dataset is required"))
		return
	}
	saved, err := s.generator.Save(r.Context(), core.ID(req.OwnerID), req.Name, req.Description, req.TemplateName, req.Dataset)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		s.writeError(w, apperrors.InvalidInput("ownerId query parameter is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	datasets, err := s.generator.List(r.Context(), core.ID(ownerID), limit, offset)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if datasets == nil {
		datasets = []*dataset.Saved{}
	}
	s.writeJSON(w, http.StatusOK, datasets)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	saved, err := s.generator.Get(r.Context(), core.ID(chi.URLParam(r, "id")))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.generator.Delete(r.Context(), core.ID(chi.URLParam(r, "id"))); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, apperrors.InvalidInput("expected multipart upload with a csv file"))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, apperrors.InvalidInput("missing file field"))
		return
	}
	defer file.Close()

	report, err := s.analyzer.AnalyzeCSV(file)
	if err != nil {
		// Parse failures are the uploader's problem, not ours.
		s.writeError(w, apperrors.InvalidInput("failed to analyze file: "+err.Error()))
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// decode parses a JSON request body, replying 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, apperrors.InvalidInput("invalid JSON body: "+err.Error()))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apperrors.GetCode(err)

	switch {
	case core.IsValidationError(err):
		status = http.StatusBadRequest
		code = apperrors.CodeValidationError
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
		code = apperrors.CodeNotFound
	case code == apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case code == apperrors.CodeExternalService:
		status = http.StatusBadGateway
	}

	if status >= 500 {
		s.log.Error("request failed: %v", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}
