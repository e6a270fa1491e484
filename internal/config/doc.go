// Package config loads and merges stdguard configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. Environment variables (STDGUARD_PROVIDER, STDGUARD_PORT, etc.)
//  2. Config file ($XDG_CONFIG_HOME/stdguard/config.yaml)
//  3. Built-in defaults
//
// Use [Load] to obtain a merged [Config].
package config
