// Package splitfile partitions a file into an ordered sequence of
// smaller part files and reassembles parts back into the original
// byte-exact file.
//
// # Splitting
//
// [SplitByCount] and [SplitBySize] plan part sizes with pure integer
// arithmetic (remainder bytes are either distributed one per part,
// front-loaded, or placed in one extra terminal part) and stream the
// source once through a fixed buffer, so memory stays constant
// regardless of file size. Parts are named "<base>.<index>" with the
// 1-based index zero-padded to at least three digits. An optional
// digest of the whole original stream is written to a
// "<base>.checksum.<algorithm>" sidecar.
//
// # Merging
//
// [Merge] orders parts by the numeric index embedded in their
// filenames, validates that every part exists and is non-empty before
// writing anything, then streams them into the destination. The output
// is renamed into place only after the last part is copied and the
// sidecar digest (when supplied) verifies, so a failed merge never
// leaves a destination file that looks complete.
//
// # Verification
//
// [VerifyParts] audits a part set without reading contents, checking
// existence and size concurrently.
package splitfile
