// Package html renders blog markdown to HTML for the web pages and JSON API.
package html
