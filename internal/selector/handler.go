package selector

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/HerbHall/drivepick/internal/server"
	"github.com/HerbHall/drivepick/pkg/models"
)

// maxRequestBytes caps POST /api/v1/selections bodies.
const maxRequestBytes = 1 << 20

// SelectionRequest is the body of POST /api/v1/selections. Elements are left
// untyped so that non-text catalog entries reach SelectValues and surface
// as type mismatches instead of being coerced during decoding.
type SelectionRequest struct {
	Catalog       []any `json:"catalog"`
	Availability  []any `json:"availability"`
	Manufacturers []any `json:"manufacturers"`
}

// Compile-time interface guard.
var _ server.RouteRegistrar = (*Handler)(nil)

// Handler serves the selection API.
type Handler struct {
	engines  map[string]*Engine
	defaults []string
	metrics  *Metrics
	logger   *zap.Logger
}

// NewHandler creates a selection handler. defaults are the manufacturer
// fragments used when a GET request carries no manufacturer parameter.
func NewHandler(defaults []string, metrics *Metrics, logger *zap.Logger, engines ...*Engine) *Handler {
	h := &Handler{
		engines:  make(map[string]*Engine, len(engines)),
		defaults: defaults,
		metrics:  metrics,
		logger:   logger,
	}
	for _, e := range engines {
		h.engines[e.Name()] = e
	}
	return h
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/selections", h.handleSelect)
	mux.HandleFunc("GET /api/v1/selections/{source}", h.handleSelectSource)
}

// handleSelect runs a selection over the catalog supplied in the request body.
//
//	@Summary		Select drives from a supplied catalog
//	@Description	Returns the available catalog entries containing any manufacturer fragment, in catalog order. Catalog and availability are paired by position and truncated to the shorter list.
//	@Tags			selections
//	@Accept			json
//	@Produce		json
//	@Param			request body SelectionRequest true "Catalog, availability flags and manufacturer fragments"
//	@Success		200 {object} models.Selection
//	@Failure		400 {object} server.Problem
//	@Router			/selections [post]
func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.UseNumber()

	var req SelectionRequest
	if err := server.DecodeJSON(dec, &req); err != nil {
		server.BadRequest(w, "invalid request body: "+err.Error(), r.URL.Path)
		return
	}

	sel, err := SelectValues(req.Catalog, req.Availability, req.Manufacturers)
	h.metrics.Observe("request", sel, err)
	if err != nil {
		if errors.Is(err, ErrTypeMismatch) {
			server.BadRequest(w, err.Error(), r.URL.Path)
			return
		}
		h.logger.Error("selection failed", zap.Error(err))
		server.InternalError(w, "selection failed", r.URL.Path)
		return
	}

	server.WriteJSON(w, http.StatusOK, sel)
}

// handleSelectSource runs a selection over a registered drive source.
// Each manufacturer query parameter adds one fragment; when the parameter
// is absent the configured defaults apply.
//
//	@Summary		Select drives from a registered source
//	@Description	Runs a selection over the builtin listing, the inventory, or locally discovered drives.
//	@Tags			selections
//	@Produce		json
//	@Param			source path string true "Catalog source" Enums(builtin, inventory, sysfs)
//	@Param			manufacturer query []string false "Manufacturer fragment; repeat for several" collectionFormat(multi)
//	@Success		200 {object} models.Selection
//	@Failure		404 {object} server.Problem
//	@Failure		500 {object} server.Problem
//	@Router			/selections/{source} [get]
func (h *Handler) handleSelectSource(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("source")
	engine, ok := h.engines[name]
	if !ok {
		server.NotFound(w, "unknown selection source: "+name, r.URL.Path)
		return
	}

	manufacturers, present := r.URL.Query()["manufacturer"]
	if !present {
		manufacturers = h.defaults
	}

	sel, err := engine.Select(r.Context(), manufacturers)
	if err != nil {
		h.logger.Error("source selection failed", zap.String("source", name), zap.Error(err))
		server.InternalError(w, "failed to load "+name+" drives", r.URL.Path)
		return
	}
	if sel.Matches == nil {
		sel = models.EmptySelection()
	}

	server.WriteJSON(w, http.StatusOK, sel)
}
