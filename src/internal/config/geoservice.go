package config

import (
	"kerjabantu-service/src/internal/gateway/geo"

	"github.com/spf13/viper"
	"googlemaps.github.io/maps"
)

// GeoService is the Google Maps client plus the region bias for job
// addresses.
type GeoService struct {
	Client *maps.Client
	Region string
}

func NewGeoService(viper *viper.Viper) (*GeoService, error) {
	client, err := maps.NewClient(
		maps.WithAPIKey(viper.GetString("thirdparty.google.api_key")),
		maps.WithRateLimit(viper.GetInt("thirdparty.google.rate_limit")),
	)
	if err != nil {
		return nil, err
	}
	return &GeoService{Client: client, Region: viper.GetString("thirdparty.google.region")}, nil
}

func (s *GeoService) Geocoder() geo.Geocoder {
	return geo.NewGoogleGeocoder(s.Client, s.Region)
}

// NewGeocoder returns nil without an API key; job addresses are then kept
// without coordinates.
func NewGeocoder(viper *viper.Viper) (geo.Geocoder, error) {
	if viper.GetString("thirdparty.google.api_key") == "" {
		return nil, nil
	}
	service, err := NewGeoService(viper)
	if err != nil {
		return nil, err
	}
	return service.Geocoder(), nil
}
