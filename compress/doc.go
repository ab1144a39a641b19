// Package compress provides the compression codecs used by save snapshots.
//
// Compression is applied to the whole save image before it is framed by
// the snapshot package. Four algorithms are built in:
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// Save files are a few kilobytes of sparse binary tables and compress
// well under any of them; Zstd is the default choice for archival
// snapshots. All codecs are safe for concurrent use.
//
// Custom codecs only need to satisfy the Codec interface; the snapshot
// header carries the Type byte, so a custom codec also needs a Type
// value outside the built-in range.
package compress
