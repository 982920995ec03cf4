package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
)

// SearchBusinesses handles GET /businesses/search?zipCode=|name=.
func (c *Client) SearchBusinesses(ctx context.Context, req *request.SearchBusinessRequest) ([]entity.Business, error) {
	query := url.Values{}
	if req.ZipCode != "" {
		query.Set("zipCode", req.ZipCode)
	}
	if req.Name != "" {
		query.Set("name", req.Name)
	}

	var out []entity.Business
	if err := c.do(ctx, http.MethodGet, "/businesses/search", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NearbyBusinesses handles GET /businesses/nearby?latitude=&longitude=&radius=.
// Results carry DistanceKm and arrive sorted by ascending distance.
func (c *Client) NearbyBusinesses(ctx context.Context, req *request.NearbyBusinessRequest) ([]entity.Business, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(req.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(req.Longitude, 'f', -1, 64))
	query.Set("radius", strconv.FormatFloat(req.RadiusKm, 'f', -1, 64))

	var out []entity.Business
	if err := c.do(ctx, http.MethodGet, "/businesses/nearby", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBusiness handles GET /businesses/:id.
func (c *Client) GetBusiness(ctx context.Context, id string) (*entity.Business, error) {
	var out entity.Business
	if err := c.do(ctx, http.MethodGet, "/businesses/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
