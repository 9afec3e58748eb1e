// Package pipeline orchestrates one merge run end to end.
//
// The run is a single linear pass: discover candidate files, derive each
// artifact's logical path and namespace prefix, parse its key/value content,
// accumulate everything into one dictionary, then serialize and write the
// combined artifact exactly once. There are no retries and no partial output;
// per-artifact failures are skipped with a diagnostic while the batch
// continues.
package pipeline
