// Package loam reads blog posts from a directory of markdown files through Loam.
package loam
