// Package pngchunk reads, edits and writes PNG files at the chunk level.
//
// A PNG stream is an 8-byte signature followed by chunk records:
//
//	length (4, big-endian) | tag (4, ASCII) | payload (length) | CRC-32 (4, big-endian)
//
// The CRC covers the tag and payload. [Parse] splits a stream into [Chunk]
// values and verifies every checksum; [PNG.Bytes] reassembles them so that
// parse followed by serialise reproduces the input exactly.
//
// Pixel data is never decoded. Chunks are opaque payloads identified by a
// [ChunkTag], whose letter case carries the critical, public, reserved and
// safe-to-copy flags.
//
// # Hiding a message
//
//	img, err := pngchunk.Parse(data)
//	if err != nil {
//	    return err
//	}
//	tag, err := pngchunk.ParseChunkTag("ruSt")
//	if err != nil {
//	    return err
//	}
//	c, err := pngchunk.NewMessageChunk(tag, []byte("hello"), pngchunk.CompressionNone)
//	if err != nil {
//	    return err
//	}
//	img.Append(c)
//	out := img.Bytes()
//
// Read it back with [PNG.ChunkByTag] and [Chunk.Message].
package pngchunk
