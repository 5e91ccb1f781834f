// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// ErrInvalidConfig is returned when the merged configuration violates one of
// the struct validation rules.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrInvalidAdapterConfigs indicates invalid client adapter settings
// (for example, a malformed address or a zero request timeout).
var ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

// validate checks that the final merged [StructuredConfig] satisfies the
// `validate` struct tags before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: bad address %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}

	return nil
}
