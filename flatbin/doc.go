// Package flatbin reads and writes flat little-endian sample files.
//
// A record is an ordered subset of header scalars followed immediately by
// the payload, every value stored at the same floating-point width:
//
//	[fs][fr][S1][S2][NENBW][ENBW] payload...
//
// There is no length prefix or tag; readers must know which fields were
// selected.
package flatbin
