// Package xcdndiff computes a unified, line-granularity diff between two
// xCDN documents (or two already-serialized xCDN texts), for tooling that
// wants to show a human what changed between two revisions of a config.
//
// xCDN has no merge syntax to target, so xcdndiff stops at rendering a
// textual diff rather than a structural, mergeable diff document.
package xcdndiff
