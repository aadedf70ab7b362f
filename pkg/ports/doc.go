/*
Package ports defines the driven ports (interfaces) of the portfolio.

These interfaces decouple the site from concrete backends so the same server,
shell commands and MCP tools work with files, memory or Redis.

# Key Interfaces

  - PostReader: loads blog posts (e.g., from Loam or Memory).
  - Watchable: signals content changes for cache invalidation.
  - Mailer: relays contact form submissions.
  - RateLimiter: bounds contact submissions per client.
*/
package ports
