package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/autovoice/voice-showroom/internal/inventory"
	"github.com/autovoice/voice-showroom/pkg/logger"
)

// CarHandler handles catalog endpoints.
type CarHandler struct {
	store  inventory.Store
	logger *logger.Logger
}

// NewCarHandler creates a new car handler.
func NewCarHandler(store inventory.Store, log *logger.Logger) *CarHandler {
	return &CarHandler{
		store:  store,
		logger: log,
	}
}

// List handles GET /api/cars
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.store.GetAll(r.Context())
	if err != nil {
		writeAppError(w, h.logger, "cars.list", err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

// Get handles GET /api/cars/{id}
func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	car, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		writeAppError(w, h.logger, "cars.get", err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

// Search handles GET /api/cars/search
// A request with no recognized parameters returns the unfiltered catalog.
func (h *CarHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := inventory.Query{
		Make:     params.Get("make"),
		Color:    params.Get("color"),
		FuelType: params.Get("fuelType"),
		MinPrice: intParam(params.Get("minPrice")),
		MaxPrice: intParam(params.Get("maxPrice")),
		Year:     intParam(params.Get("year")),
	}

	cars, err := h.store.Search(r.Context(), q)
	if err != nil {
		writeAppError(w, h.logger, "cars.search", err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

// intParam parses an optional integer query parameter; unparsable values are
// treated as absent, matching the lenient query handling of the rest of the API.
func intParam(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
