// Package client implements the HTTP layer for firstcycling.com.
//
// It builds race.php and search.php query strings, performs GET requests
// with retry on transient failures, and returns the raw HTML for the
// parsing layers. An optional TTL page cache avoids refetching pages that
// rarely change (victory tables, past editions).
package client
