// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the tools rely on at startup. Because the defaults source fills
// every field, validation only fails when an explicit override is broken.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Server.BaseURL) == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Timeouts.Refresh <= 0 || cfg.Timeouts.Cookies <= 0 || cfg.Timeouts.Probe <= 0 {
		return ErrInvalidTimeoutConfigs
	}

	if cfg.Batch.Delay < 0 {
		return ErrInvalidBatchConfigs
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		return ErrInvalidOutputConfigs
	}

	return nil
}
