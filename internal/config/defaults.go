// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultServerAddress         = "127.0.0.1:5000"
	DefaultServerRequestTimeout  = 15 * time.Second
	DefaultServerShutdownTimeout = 10 * time.Second
	DefaultLogLevel              = "debug"
	DefaultAdapterAddress        = "http://127.0.0.1:5000"
	DefaultAdapterRequestTimeout = 10 * time.Second
	defaultDotEnvFile            = ".env"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultServerAddress,
			RequestTimeout:  DefaultServerRequestTimeout,
			ShutdownTimeout: DefaultServerShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}
