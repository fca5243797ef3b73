package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"userdir/internal/core"
	"userdir/internal/logging"
)

// multipartMemory is the in-memory threshold for parsing uploads; larger
// parts spill to temp files. The size limit itself is enforced by
// MaxBytesReader, not by this value.
const multipartMemory = 4 << 20

// handleImportUsers accepts a CSV file as multipart form data and commits it
// as one all-or-nothing batch. A batch with row problems gets a 400 whose
// body lists every offending row.
//
// POST /api/users/import
func (s *Server) handleImportUsers(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if maxBytesError(err) {
			respondMessage(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file too large (limit %d bytes)", s.cfg.Import.MaxFileSize))
			return
		}
		respondMessage(w, http.StatusBadRequest, "no file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".csv" {
		respondMessage(w, http.StatusBadRequest, "invalid csv: only .csv files are supported")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	rows, err := core.ParseImportFile(data, s.cfg.Import.MaxRows)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.Info("import started", "file", header.Filename, "rows", len(rows))

	result, err := s.service.ImportBatch(r.Context(), rows)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if !result.Success {
		logger.Info("import rejected", "file", header.Filename, "failed_rows", len(result.Errors))
		writeJSON(w, http.StatusBadRequest, result)
		return
	}

	logger.Info("import completed", "file", header.Filename, "created", result.Created)
	writeJSON(w, http.StatusOK, result)
}

// handleDownloadTemplate serves the sample import file.
//
// GET /api/users/template
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="user_template.csv"`)

	if err := core.WriteTemplate(w); err != nil {
		logging.FromContext(r.Context()).Error("template write failed", "error", err)
	}
}

// handleExportUsers serves the whole directory as CSV.
//
// GET /api/users/export
func (s *Server) handleExportUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.service.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	filename := fmt.Sprintf("users_%s.csv", time.Now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := core.WriteExport(w, users); err != nil {
		logging.FromContext(r.Context()).Error("export write failed", "error", err)
	}
}

// maxBytesError reports whether err came from http.MaxBytesReader. The
// multipart reader does not wrap the cause on every path, so fall back to the
// message it propagates.
func maxBytesError(err error) bool {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
