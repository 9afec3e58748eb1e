// Package langpath derives namespace prefixes from translation file paths.
//
// Two steps are involved. [Normalize] strips everything up to a recognized
// source-root marker, yielding a logical path such as
// core/features/calendar/strings.json that is independent of the checkout
// location and separator convention. [Derive] then applies an ordered rule
// set to the logical path's leading segments and returns a [Route] carrying
// both the matched [Rule] and the dot-delimited prefix prepended to every key
// from that file.
//
// Routing is a pure function of the segment list, so each rule can be tested
// in isolation.
package langpath
