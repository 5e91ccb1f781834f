// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It dispatches a subcommand (create, get, search, notes, health, version)
// to the intake API through an [adapter.IntakeAdapter] and prints the
// server's answer as indented JSON.
package client
