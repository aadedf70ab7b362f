// Package config loads portfolio.yaml and its environment overrides.
package config
