package geo

import (
	"context"
	"errors"
	"fmt"
	"kerjabantu-service/src/internal/entity"
	"strings"

	"googlemaps.github.io/maps"
)

var ErrNoResult = errors.New("geo: address not found")

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (entity.Location, error)
}

type GoogleGeocoder struct {
	Client *maps.Client
	Region string
}

func NewGoogleGeocoder(client *maps.Client, region string) *GoogleGeocoder {
	return &GoogleGeocoder{
		Client: client,
		Region: region,
	}
}

// Geocode takes the first result. The returned address is the one given by
// the caller, not Google's formatted one.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (entity.Location, error) {
	results, err := g.Client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  g.Region,
	})
	if err != nil {
		if strings.Contains(err.Error(), "ZERO_RESULTS") {
			return entity.Location{}, ErrNoResult
		}
		return entity.Location{}, fmt.Errorf("geo: geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return entity.Location{}, ErrNoResult
	}

	loc := results[0].Geometry.Location
	return entity.Location{
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		Address: address,
	}, nil
}
