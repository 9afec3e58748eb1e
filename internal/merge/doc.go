// Package merge accumulates prefixed key/value pairs from many translation
// artifacts into one [Mapping].
//
// Later writes win on key collision, which lets a module deliberately
// override another's strings; every changed overwrite is reported back as a
// [Collision] so the pipeline can surface it.
package merge
