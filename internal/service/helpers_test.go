// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import "github.com/MKhiriev/go-appointment-intake/internal/config"

func configStorage(disableSeed bool) config.Storage {
	return config.Storage{DisableSeed: disableSeed}
}

func configWithVersion(version string) config.StructuredConfig {
	return config.StructuredConfig{App: config.App{Version: version}}
}
