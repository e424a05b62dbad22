// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the REST client of the assistant server into
// a single process lifecycle.
package client
