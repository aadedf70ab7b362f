// Package memory provides in-memory adapters for tests, demos and dry runs.
package memory
