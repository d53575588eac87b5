// Package search resolves free-text race names to firstcycling.com race ids.
//
// The site's search page returns an HTML listing of races as anchors of the
// form <a href="race.php?r=4&y=2025" title="Milano-Sanremo">. The resolver
// scans those anchors, scores each title against the query with a
// sequence-matching similarity ratio, and returns the id of the single best
// match above a threshold.
package search
