package models

// VPNDetection is a heuristic derived from the geolocation provider's
// hosting/proxy/tor booleans: any of them set marks the address as likely
// behind a VPN or anonymizing service.
type VPNDetection struct {
	IsVPNLikely bool     `json:"isVpnLikely"`
	Flags       []string `json:"flags"`
}

// IPInfo is the subset of the geolocation provider's response the assistant
// surfaces, enriched with the VPN-likelihood heuristic.
type IPInfo struct {
	IP           string       `json:"ip"`
	CountryName  string       `json:"country_name"`
	City         string       `json:"city"`
	Region       string       `json:"region"`
	Org          string       `json:"org"`
	Timezone     string       `json:"timezone"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	VPNDetection VPNDetection `json:"vpnDetection"`
}
