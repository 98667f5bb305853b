// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// minTokenSignKeyLength is the HS256 key size in bytes.
const minTokenSignKeyLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLength)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is empty", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.QueryTimeout <= 0 {
		return fmt.Errorf("%w: query timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no server address", ErrInvalidServerConfigs)
	}

	t := cfg.Timeline
	if t.MinLimit <= 0 || t.MinLimit > t.DefaultLimit || t.DefaultLimit > t.MaxLimit {
		return fmt.Errorf("%w: need 0 < min (%d) <= default (%d) <= max (%d)",
			ErrInvalidTimelineConfigs, t.MinLimit, t.DefaultLimit, t.MaxLimit)
	}

	if cfg.Workers.ReadinessInterval <= 0 {
		return fmt.Errorf("%w: readiness interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
