// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment using the env and envPrefix tags
// of [StructuredConfig]. Durations use time.ParseDuration syntax
// (WORKERS_PRUNE_INTERVAL=1h).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: false}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
