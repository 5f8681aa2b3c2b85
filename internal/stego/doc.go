// Package stego hides a length-prefixed byte payload in the least significant
// bits of an image's colour channels.
//
// # Wire Format
//
// The payload is written as a 32-bit big-endian byte count followed by the
// data bytes, most significant bit first. Each bit replaces the LSB of one
// colour channel. Channels are visited in row-major order starting at
// Bounds().Min: row by row, left to right within a row, and red, green, blue
// within a pixel. Alpha is never touched. A carrier therefore holds
// width*height*3 bits, of which the first 32 are the length prefix.
//
// Carriers must be stored losslessly (PNG). Any recompression, resizing or
// colour conversion destroys the payload.
package stego
