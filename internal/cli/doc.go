// Package cli renders search matches and parsed race tables as
// human-readable text or JSON for the firstcycling command.
package cli
