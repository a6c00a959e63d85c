package nmea

const (
	startDelim = '$'
	sumDelim   = '*'
)

const hexDigits = "0123456789ABCDEF"

// Checksum is a rendered NMEA checksum: two uppercase hex digits.
type Checksum [2]byte

func (c Checksum) String() string {
	return string(c[:])
}

// MarshalText implements encoding.TextMarshaler.
func (c Checksum) MarshalText() ([]byte, error) {
	return c.AppendTo(nil), nil
}

// AppendTo appends both digits to dst.
func (c Checksum) AppendTo(dst []byte) []byte {
	return append(dst, c[0], c[1])
}

// Render formats an accumulator value.
func Render(sum byte) Checksum {
	return Checksum{hexDigits[sum>>4], hexDigits[sum&0x0F]}
}

// Sum returns the XOR of the sentence's accumulation range.
func Sum(sentence []byte) byte {
	start, end := accumulationRange(sentence)
	ck := byte(0)
	for i := start; i < end; i++ {
		ck ^= sentence[i]
	}
	return ck
}

// Compute returns the checksum of sentence. It never fails: an empty or
// delimiter-only sentence yields "00".
func Compute(sentence []byte) Checksum {
	return Render(Sum(sentence))
}

// ComputeString is Compute for strings.
func ComputeString(sentence string) Checksum {
	start, end := accumulationRange(sentence)
	ck := byte(0)
	for i := start; i < end; i++ {
		ck ^= sentence[i]
	}
	return Render(ck)
}

// Frame rebuilds sentence as "$<range>*HH". A leading '$' and everything from
// the first '*' onward are dropped before the checksum is appended.
func Frame(sentence []byte) []byte {
	start, end := accumulationRange(sentence)
	out := make([]byte, 0, end-start+4)
	out = append(out, startDelim)
	out = append(out, sentence[start:end]...)
	out = append(out, sumDelim)
	return Compute(sentence).AppendTo(out)
}

// accumulationRange returns [start, end) of the bytes covered by the checksum.
// The first '*' ends the range; later ones are part of the ignored tail.
func accumulationRange[T ~string | ~[]byte](s T) (int, int) {
	start := 0
	if len(s) > 0 && s[0] == startDelim {
		start = 1
	}
	for i := start; i < len(s); i++ {
		if s[i] == sumDelim {
			return start, i
		}
	}
	return start, len(s)
}
