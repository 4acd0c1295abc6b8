package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/HerbHall/drivepick/internal/server"
	"github.com/HerbHall/drivepick/pkg/models"
)

// maxImportBytes caps CSV import and JSON request bodies.
const maxImportBytes = 4 << 20

// CreateDriveRequest is the body of POST /api/v1/drives.
type CreateDriveRequest struct {
	Model     string              `json:"model"`
	Available models.Availability `json:"available"`
}

// AvailabilityRequest is the body of PUT /api/v1/drives/{id}/availability.
type AvailabilityRequest struct {
	Available *models.Availability `json:"available"`
}

// ImportResponse reports how many rows a CSV import stored.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// Compile-time interface guard.
var _ server.RouteRegistrar = (*Handler)(nil)

// Handler serves the drive inventory API.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler creates an inventory handler.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/drives", h.handleList)
	mux.HandleFunc("POST /api/v1/drives", h.handleCreate)
	mux.HandleFunc("GET /api/v1/drives/export", h.handleExport)
	mux.HandleFunc("POST /api/v1/drives/import", h.handleImport)
	mux.HandleFunc("GET /api/v1/drives/{id}", h.handleGet)
	mux.HandleFunc("PUT /api/v1/drives/{id}/availability", h.handleSetAvailability)
	mux.HandleFunc("DELETE /api/v1/drives/{id}", h.handleDelete)
}

// handleList returns every drive in position order.
//
//	@Summary		List inventory drives
//	@Tags			drives
//	@Produce		json
//	@Success		200 {array} models.Drive
//	@Failure		500 {object} server.Problem
//	@Router			/drives [get]
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	drives, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("list drives", zap.Error(err))
		server.InternalError(w, "failed to list drives", r.URL.Path)
		return
	}
	server.WriteJSON(w, http.StatusOK, drives)
}

// handleCreate appends a manually entered drive.
//
//	@Summary		Add a drive
//	@Tags			drives
//	@Accept			json
//	@Produce		json
//	@Param			request body CreateDriveRequest true "Drive model and availability"
//	@Success		201 {object} models.Drive
//	@Failure		400 {object} server.Problem
//	@Router			/drives [post]
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateDriveRequest
	if err := server.DecodeJSON(json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBytes)), &req); err != nil {
		server.BadRequest(w, "invalid request body: "+err.Error(), r.URL.Path)
		return
	}
	if strings.TrimSpace(req.Model) == "" {
		server.BadRequest(w, "model is required", r.URL.Path)
		return
	}

	d := models.Drive{
		Model:        req.Model,
		Availability: req.Available,
		Source:       models.SourceManual,
	}
	if err := h.repo.Create(r.Context(), &d); err != nil {
		h.logger.Error("create drive", zap.Error(err))
		server.InternalError(w, "failed to create drive", r.URL.Path)
		return
	}

	h.logger.Info("drive created", zap.String("id", d.ID), zap.String("model", d.Model))
	server.WriteJSON(w, http.StatusCreated, d)
}

// handleGet returns one inventory drive by ID.
//
//	@Summary		Get a drive
//	@Tags			drives
//	@Produce		json
//	@Param			id path string true "Drive ID"
//	@Success		200 {object} models.Drive
//	@Failure		404 {object} server.Problem
//	@Router			/drives/{id} [get]
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d, err := h.repo.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		server.NotFound(w, "drive "+id+" not found", r.URL.Path)
		return
	}
	if err != nil {
		h.logger.Error("get drive", zap.String("id", id), zap.Error(err))
		server.InternalError(w, "failed to get drive", r.URL.Path)
		return
	}
	server.WriteJSON(w, http.StatusOK, d)
}

// handleSetAvailability updates the stock flag and returns the drive.
//
//	@Summary		Set drive availability
//	@Tags			drives
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "Drive ID"
//	@Param			request body AvailabilityRequest true "New availability flag"
//	@Success		200 {object} models.Drive
//	@Failure		400 {object} server.Problem
//	@Failure		404 {object} server.Problem
//	@Router			/drives/{id}/availability [put]
func (h *Handler) handleSetAvailability(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req AvailabilityRequest
	if err := server.DecodeJSON(json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBytes)), &req); err != nil {
		server.BadRequest(w, "invalid request body: "+err.Error(), r.URL.Path)
		return
	}
	if req.Available == nil {
		server.BadRequest(w, "available is required", r.URL.Path)
		return
	}

	err := h.repo.SetAvailability(r.Context(), id, *req.Available)
	if errors.Is(err, ErrNotFound) {
		server.NotFound(w, "drive "+id+" not found", r.URL.Path)
		return
	}
	if err != nil {
		h.logger.Error("set availability", zap.String("id", id), zap.Error(err))
		server.InternalError(w, "failed to update drive", r.URL.Path)
		return
	}

	d, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get drive", zap.String("id", id), zap.Error(err))
		server.InternalError(w, "failed to get drive", r.URL.Path)
		return
	}
	server.WriteJSON(w, http.StatusOK, d)
}

// handleDelete removes a drive from the inventory.
//
//	@Summary		Delete a drive
//	@Tags			drives
//	@Param			id path string true "Drive ID"
//	@Success		204
//	@Failure		404 {object} server.Problem
//	@Router			/drives/{id} [delete]
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := h.repo.Delete(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		server.NotFound(w, "drive "+id+" not found", r.URL.Path)
		return
	}
	if err != nil {
		h.logger.Error("delete drive", zap.String("id", id), zap.Error(err))
		server.InternalError(w, "failed to delete drive", r.URL.Path)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleImport replaces the csv-sourced drives with the uploaded listing.
//
//	@Summary		Import drives from CSV
//	@Description	Replaces every csv-sourced drive with the rows of a model,available CSV body.
//	@Tags			drives
//	@Accept			text/csv
//	@Produce		json
//	@Success		200 {object} ImportResponse
//	@Failure		400 {object} server.Problem
//	@Router			/drives/import [post]
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	drives, err := ReadCSV(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}
	if err := h.repo.ReplaceSource(r.Context(), models.SourceCSV, drives); err != nil {
		h.logger.Error("import drives", zap.Error(err))
		server.InternalError(w, "failed to import drives", r.URL.Path)
		return
	}

	h.logger.Info("drives imported", zap.Int("count", len(drives)))
	server.WriteJSON(w, http.StatusOK, ImportResponse{Imported: len(drives)})
}

// handleExport streams the inventory in the CSV import format.
//
//	@Summary		Export the inventory as CSV
//	@Tags			drives
//	@Produce		text/csv
//	@Success		200 {string} string "model,available rows"
//	@Router			/drives/export [get]
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	drives, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("export drives", zap.Error(err))
		server.InternalError(w, "failed to export drives", r.URL.Path)
		return
	}

	// Encode fully before any header is written.
	var buf bytes.Buffer
	if err := WriteCSV(&buf, drives); err != nil {
		h.logger.Error("encode csv", zap.Error(err))
		server.InternalError(w, "failed to export drives", r.URL.Path)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="drives.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
