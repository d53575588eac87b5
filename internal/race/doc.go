// Package race provides typed access to race pages on firstcycling.com.
//
// A Race wraps the site's numeric race id; an Edition wraps a (race id,
// year) pair. Both are immutable after construction and hold no state of
// their own: every operation performs one fetch through the client layer
// and parses the returned page. Search resolves a free-text race name to
// an id via the fuzzy matcher and never fails, returning an empty result
// instead.
package race
