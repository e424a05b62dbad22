// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks the merged configuration after defaults have been applied.
// It reports the first structural problem found; value-level defaults are the
// responsibility of applyDefaults.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" || !strings.Contains(c.Server.HTTPAddress, ":") {
		return ErrInvalidServerConfigs
	}

	if c.Adapter.GeoAPIBaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if c.Transfer.TTL <= 0 || c.Transfer.MaxUploadBytes <= 0 {
		return ErrInvalidTransferConfigs
	}

	return nil
}
