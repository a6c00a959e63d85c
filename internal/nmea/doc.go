// Package nmea computes NMEA-0183 sentence checksums.
//
// The checksum is the XOR of every byte between the leading '$' and the first '*',
// rendered as two uppercase hex digits. Either delimiter may be missing:
// - no '$': accumulation starts at the first byte
// - no '*': accumulation runs to the end of the input
//
// Anything after the first '*' is ignored, so a sentence that already carries a
// (possibly wrong) checksum produces the same result as one that does not.
package nmea
