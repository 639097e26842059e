// Package source opens the byte streams the scanner consumes.
//
// Large delimited files are routinely stored compressed, so Open routes a
// path through a streaming decompressor chosen by file extension before
// handing it to the caller:
//
//	.zst, .zstd  Zstandard
//	.gz          gzip
//	.s2          S2 (Snappy-compatible)
//	.lz4         LZ4 frame
//	anything else is read as-is
//
// All codecs decompress incrementally, so the scanner's bounded-memory
// property holds for compressed inputs too.
//
//	rc, err := source.Open("trades.csv.zst")
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
//	result, err := scan.Aggregate(rc, []byte("110"))
package source
