// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-geo-api-url base URL of the IP geolocation provider
//	-transfer-ttl secure file lifetime (e.g., "24h")
//	-max-upload max upload size in bytes
//	-version application version string
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout time.Duration
	var geoAPIBaseURL string
	var transferTTL time.Duration
	var maxUploadBytes int64
	var version string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&geoAPIBaseURL, "geo-api-url", "", "IP geolocation provider base URL")
	flag.DurationVar(&transferTTL, "transfer-ttl", 0, "Secure file lifetime (e.g., 24h)")
	flag.Int64Var(&maxUploadBytes, "max-upload", 0, "Max upload size in bytes")
	flag.StringVar(&version, "version", "", "Application version string")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			GeoAPIBaseURL: geoAPIBaseURL,
		},
		Transfer: Transfer{
			TTL:            transferTTL,
			MaxUploadBytes: maxUploadBytes,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the address in "host:port" form, or an empty string when
// neither part has been set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a "[host]:[port]" string into the receiver. It implements
// flag.Value.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port
	return nil
}
