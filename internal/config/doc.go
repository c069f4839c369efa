// Ithacaround - Venue Discovery and Recommendation Engine
// Copyright 2026 Ithacaround Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ithacaround/engine

// Package config loads engine configuration from layered sources.
//
// Precedence, lowest to highest:
//  1. Built-in defaults
//  2. Optional YAML config file (ITHACAROUND_CONFIG_PATH or a default path)
//  3. ITHACAROUND_* environment variables
//
// Configuration covers the ambient concerns of the engine only: where state
// is persisted, where the catalog comes from, how scoring is weighted, and
// how the engine logs. User preference state never lives here.
package config
