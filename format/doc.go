// Package format reads and writes the jugglefest text formats.
//
// The population format declares circuits and jugglers, one per line:
//
//	C C0 H:7 E:7 P:10
//	C C1 H:2 E:1 P:1
//	J J0 H:3 E:9 P:2 C1,C0
//
// The compact layout without the leading record letter is accepted as well:
//
//	C0 H7 E7 P10
//	J0 H3 E9 P2 C1,C0
//
// Circuits must appear in ID order starting at 0 and before any juggler that
// references them. Blank lines and lines starting with any other token are
// ignored.
//
// The assignment format has one line per circuit in descending ID order:
//
//	C1 J0 C1:23 C0:104
//	C0 J1 C0:86 C1:31,J2 C0:79 C1:30
package format
