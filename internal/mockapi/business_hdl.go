package mockapi

import (
	"net/http"

	"locker-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BusinessHandler struct {
	store           *Store
	defaultRadiusKm float64
	log             *zap.Logger
}

func NewBusinessHandler(store *Store, defaultRadiusKm float64, log *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		store:           store,
		defaultRadiusKm: defaultRadiusKm,
		log:             log.With(zap.String("handler", "business")),
	}
}

// Search handles GET /businesses/search?zipCode=|name=
func (h *BusinessHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	zipCode := query.Get("zipCode")
	name := query.Get("name")

	if zipCode == "" && name == "" {
		utils.ResponseBadRequest(w, "zipCode or name is required", nil)
		return
	}
	if zipCode != "" && len(zipCode) != 5 {
		utils.ResponseBadRequest(w, "zipCode must be 5 digits", nil)
		return
	}

	results := h.store.SearchBusinesses(zipCode, name)
	utils.ResponseSuccess(w, "success", results)
}

// Nearby handles GET /businesses/nearby?latitude=&longitude=&radius=
func (h *BusinessHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("latitude") == "" || query.Get("longitude") == "" {
		utils.ResponseBadRequest(w, "latitude and longitude are required", nil)
		return
	}

	lat := utils.ParseFloat(query.Get("latitude"), 0)
	lon := utils.ParseFloat(query.Get("longitude"), 0)
	radius := utils.ParseFloat(query.Get("radius"), h.defaultRadiusKm)

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		utils.ResponseBadRequest(w, "coordinates out of range", nil)
		return
	}

	results := h.store.NearbyBusinesses(lat, lon, radius)
	utils.ResponseSuccess(w, "success", results)
}

// GetByID handles GET /businesses/{id}
func (h *BusinessHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Business ID is required", nil)
		return
	}

	business, ok := h.store.GetBusiness(id)
	if !ok {
		utils.ResponseNotFound(w, "business not found")
		return
	}

	utils.ResponseSuccess(w, "success", business)
}
