// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/dudhatpatel/cyberdefender/internal/service"
	"github.com/dudhatpatel/cyberdefender/internal/transfer"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDomain:         http.StatusBadRequest,
	service.ErrUnknownScheme:         http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	transfer.ErrFileNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
