// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dudhatpatel/cyberdefender/models"
	"github.com/go-resty/resty/v2"
)

// GeoConfig configures the geolocation client.
type GeoConfig struct {
	BaseURL string
	Timeout time.Duration
}

type geoLocator struct {
	client *resty.Client
}

// NewGeoLocator builds a [GeoLocator] backed by the ipapi.co JSON endpoint.
func NewGeoLocator(cfg GeoConfig) GeoLocator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://ipapi.co"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &geoLocator{client: cli}
}

// geoResponse is the provider payload. The anonymity booleans are optional;
// absent fields decode to false, which keeps the VPN heuristic conservative.
type geoResponse struct {
	IP          string  `json:"ip"`
	CountryName string  `json:"country_name"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Org         string  `json:"org"`
	Timezone    string  `json:"timezone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`

	Hosting    bool `json:"hosting"`
	Datacenter bool `json:"datacenter"`
	Proxy      bool `json:"proxy"`
	Tor        bool `json:"tor"`

	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func (g *geoLocator) Lookup(ctx context.Context, ip string) (models.IPInfo, error) {
	// The provider resolves the caller's own address when the path segment
	// is empty: /json/ vs /{ip}/json/.
	path := "/json/"
	if ip != "" {
		path = fmt.Sprintf("/%s/json/", ip)
	}

	resp, err := g.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return models.IPInfo{}, fmt.Errorf("geolocation request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.IPInfo{}, fmt.Errorf("geolocation provider: http %d", resp.StatusCode())
	}

	var data geoResponse
	if err = json.Unmarshal(resp.Body(), &data); err != nil {
		return models.IPInfo{}, fmt.Errorf("decode geolocation response: %w", err)
	}
	if data.Error {
		return models.IPInfo{}, fmt.Errorf("geolocation provider: %s", data.Reason)
	}

	return models.IPInfo{
		IP:           data.IP,
		CountryName:  data.CountryName,
		City:         data.City,
		Region:       data.Region,
		Org:          data.Org,
		Timezone:     data.Timezone,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		VPNDetection: detectVPN(data),
	}, nil
}

func detectVPN(data geoResponse) models.VPNDetection {
	var flags []string
	if data.Hosting || data.Datacenter {
		flags = append(flags, "Hosting/datacenter detected")
	}
	if data.Proxy {
		flags = append(flags, "Proxy detected")
	}
	if data.Tor {
		flags = append(flags, "TOR exit node detected")
	}

	return models.VPNDetection{IsVPNLikely: len(flags) > 0, Flags: flags}
}
