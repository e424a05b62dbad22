// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidDomain         = errors.New("invalid domain name")
	ErrUnknownScheme         = errors.New("unknown encoding scheme")
)
