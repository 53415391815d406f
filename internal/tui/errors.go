// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
)

// transport failures that mean the server cannot be reached at all
var unreachableMarkers = []string{
	"connection refused",
	"dial tcp",
	"no such host",
	"network is unreachable",
	"i/o timeout",
}

const unavailableText = "No network or the server is unavailable"

// humanizeServerUnavailableError turns low level transport errors into a
// short status line. Other errors keep their own message.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return unavailableText
	}

	s := strings.ToLower(err.Error())
	for _, marker := range unreachableMarkers {
		if strings.Contains(s, marker) {
			return unavailableText
		}
	}
	if strings.Contains(s, "context deadline exceeded") {
		return unavailableText
	}

	return err.Error()
}
