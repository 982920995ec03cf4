package usecase

import (
	"context"
	"fmt"
	"sort"

	"locker-rental/internal/api"
	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
	"locker-rental/internal/geo"
	"locker-rental/internal/locate"
	"locker-rental/internal/state"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

type BusinessService interface {
	Search(ctx context.Context, req *request.SearchBusinessRequest) ([]entity.Business, error)
	// Nearby resolves the device position (or uses loc when non-nil) and
	// fetches businesses within the configured radius, sorted by
	// ascending distance.
	Nearby(ctx context.Context, loc *entity.Location) ([]entity.Business, *entity.Location, error)
	Detail(ctx context.Context, id string) (*entity.Business, error)
	// Results is the reconciled home-screen list: nearby when present,
	// explicit search otherwise.
	Results() []entity.Business
}

type businessService struct {
	client   *api.Client
	provider *locate.Provider
	store    *state.BusinessStore
	config   *utils.Config
	log      *zap.Logger
}

func NewBusinessService(
	client *api.Client,
	provider *locate.Provider,
	store *state.BusinessStore,
	config *utils.Config,
	log *zap.Logger,
) BusinessService {
	return &businessService{
		client:   client,
		provider: provider,
		store:    store,
		config:   config,
		log:      log.With(zap.String("service", "business")),
	}
}

func (s *businessService) Search(ctx context.Context, req *request.SearchBusinessRequest) ([]entity.Business, error) {
	if req.ZipCode == "" && req.Name == "" {
		return nil, fmt.Errorf("validation failed: provide a ZIP code or a name")
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.store.StartSearch()
	results, err := s.client.SearchBusinesses(ctx, req)
	if err != nil {
		s.store.SearchFailed(err.Error())
		return nil, err
	}

	s.store.SearchSucceeded(results)
	s.log.Info("Search completed",
		zap.String("zip", req.ZipCode),
		zap.String("name", req.Name),
		zap.Int("results", len(results)))
	return results, nil
}

func (s *businessService) Nearby(ctx context.Context, loc *entity.Location) ([]entity.Business, *entity.Location, error) {
	if loc == nil {
		resolved, err := s.provider.GetCurrentLocation(ctx)
		if err != nil {
			// Location failure is non-fatal: record it on the nearby
			// slot and let the caller fall back to explicit search.
			s.store.NearbyFailed(err.Error())
			return nil, nil, err
		}
		loc = resolved
	}

	s.store.StartNearby()
	results, err := s.client.NearbyBusinesses(ctx, &request.NearbyBusinessRequest{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		RadiusKm:  s.config.Search.RadiusKm,
	})
	if err != nil {
		s.store.NearbyFailed(err.Error())
		return nil, loc, err
	}

	// Fill any gaps with the shared distance function and keep the list
	// ascending: the map framing treats that order as a precondition.
	for i := range results {
		if results[i].DistanceKm == nil {
			d := geo.Haversine(loc.Latitude, loc.Longitude,
				results[i].Location.Latitude(), results[i].Location.Longitude())
			results[i].DistanceKm = &d
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].DistanceKm < *results[j].DistanceKm
	})

	s.store.NearbySucceeded(results)
	s.log.Info("Nearby search completed",
		zap.Float64("lat", loc.Latitude),
		zap.Float64("lon", loc.Longitude),
		zap.Int("results", len(results)))
	return results, loc, nil
}

func (s *businessService) Detail(ctx context.Context, id string) (*entity.Business, error) {
	if id == "" {
		return nil, fmt.Errorf("validation failed: business id is required")
	}

	s.store.StartDetail()
	business, err := s.client.GetBusiness(ctx, id)
	if err != nil {
		s.store.DetailFailed(err.Error())
		return nil, err
	}
	s.store.DetailSucceeded(business)
	return business, nil
}

func (s *businessService) Results() []entity.Business {
	return s.store.DisplayResults()
}
