// Package endpoint parses firstcycling.com race pages into structured
// records.
//
// Every race.php tab renders its data as HTML tables. The generic Page
// parser extracts all tables on a page; the specialized parsers (victory
// table, stage victories, edition results, startlist) interpret the
// well-known column layouts of their tabs. All parsers tolerate malformed
// or unexpected markup: missing tables simply yield empty results.
package endpoint
