// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [Settings] satisfy the invariants
// required before they are mapped onto a kv.ClientBuilder.
//
// Returns nil if the settings are valid, or a descriptive error otherwise.
func (s *Settings) validate() error {
	if len(s.Client.Endpoints) == 0 {
		return ErrNoEndpointsConfigured
	}

	for _, endpoint := range s.Client.Endpoints {
		if strings.TrimSpace(endpoint) == "" {
			return fmt.Errorf("%w: %q", ErrBlankEndpointConfigured, endpoint)
		}
	}

	if s.Client.Password != "" && s.Client.User == "" {
		return ErrIncompleteCredentials
	}

	if s.Client.DialTimeout < 0 || s.Probe.Timeout < 0 {
		return ErrInvalidTimeout
	}

	return nil
}
