// Package redis provides Redis-backed adapters (go-redis v9).
package redis
