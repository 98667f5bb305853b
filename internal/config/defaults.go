// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the lowest-priority configuration layer.
// Secrets and the DSN have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-feed",
			TokenDuration: time.Hour,
			Version:       "dev",
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB: DB{
				QueryTimeout: 5 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Timeline: Timeline{
			DefaultLimit: 20,
			MinLimit:     1,
			MaxLimit:     50,
		},
		Workers: Workers{
			ReadinessInterval: 15 * time.Second,
		},
	}
}
