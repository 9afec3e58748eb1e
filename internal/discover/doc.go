// Package discover resolves candidate paths into the ordered sequence of
// translation artifacts the pipeline consumes.
//
// Candidates may name files directly or directories, in which case the fixed
// filename lang.json is appended. Missing candidates and zero-byte files are
// silently dropped; genuine filesystem failures abort the run. Candidate
// lists can also be loaded from a manifest file, one path per line.
package discover
