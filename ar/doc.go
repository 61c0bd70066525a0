/*
Package ar implements the response side of the PIC Action Replay protocol.

The cheat cartridge sends the console 8-byte command records. Each record
carries a mode byte, a key byte, four scrambled payload bytes and a two byte
checksum trailer. Decoding a record verifies the trailer with a 32-bit
feedback shift register, selects a cipher variant from the mode and key
bytes and unscrambles the payload into a 4-byte response.

Several variants have not been reverse engineered yet. Records that select
them fail with an error matching ErrUnimplemented so that a stream of mixed
records can still be processed.

All state is local to a single call so Decode is safe for concurrent use.
*/
package ar
