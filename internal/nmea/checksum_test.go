package nmea

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

const (
	rmcBody = "GPRMC,162254.00,A,3723.02837,N,12159.39853,W,0.820,188.36,110706,,,A"
	ggaBody = "GPGGA,001431.003,3907.3885,N,12102.4767,W,1,05,02.1,00545.5,M,-26.0,M,,"
)

func xorAll(s string) byte {
	ck := byte(0)
	for i := 0; i < len(s); i++ {
		ck ^= s[i]
	}
	return ck
}

func TestCompute_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"rmc with checksum", "$" + rmcBody + "*74", "74"},
		{"rmc no star", "$" + rmcBody, "74"},
		{"rmc no dollar trailing star", rmcBody + "*", "74"},
		{"rmc bare", rmcBody, "74"},
		{"srf100", "$PSRF100,0,9600,8,1,0*", "0C"},
		{"gga trailing spaces", "$" + ggaBody + "*  ", "5D"},
		{"gga wrong checksum", "$" + ggaBody + "*00", "5D"},
		{"gga no dollar", ggaBody + "*5D", "5D"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeString(tc.in).String()
			if got != tc.want {
				t.Fatalf("ComputeString(%q)=%q want %q", tc.in, got, tc.want)
			}
			if b := Compute([]byte(tc.in)).String(); b != tc.want {
				t.Fatalf("Compute(%q)=%q want %q", tc.in, b, tc.want)
			}
		})
	}
}

func TestCompute_EmptyRange(t *testing.T) {
	for _, in := range []string{"", "$", "*", "$*", "$*74", "*  "} {
		if got := ComputeString(in).String(); got != "00" {
			t.Fatalf("ComputeString(%q)=%q want 00", in, got)
		}
	}
}

func TestCompute_DelimiterEquivalence(t *testing.T) {
	suffixes := []string{"", "*", "*74", "*FF", "*  ", "*\r\n", "*zz garbage"}
	for _, body := range []string{rmcBody, ggaBody, "PGRMM,WGS 84", ""} {
		want := ComputeString(body)
		for _, suf := range suffixes {
			for _, prefix := range []string{"", "$"} {
				in := prefix + body + suf
				if got := ComputeString(in); got != want {
					t.Fatalf("ComputeString(%q)=%s want %s", in, got, want)
				}
			}
		}
	}
}

func TestCompute_FirstStarEndsRange(t *testing.T) {
	in := "$GPTXT,a*b,c*12"
	want := Render(xorAll("GPTXT,a"))
	if got := ComputeString(in); got != want {
		t.Fatalf("ComputeString(%q)=%s want %s", in, got, want)
	}
}

func TestCompute_OnlyLeadingDollarSkipped(t *testing.T) {
	// A second '$' is ordinary payload.
	in := "$$GPX"
	want := Render(xorAll("$GPX"))
	if got := ComputeString(in); got != want {
		t.Fatalf("ComputeString(%q)=%s want %s", in, got, want)
	}
	// '$' after a leading space is not a delimiter.
	in = " $GPX*"
	want = Render(xorAll(" $GPX"))
	if got := ComputeString(in); got != want {
		t.Fatalf("ComputeString(%q)=%s want %s", in, got, want)
	}
}

func TestCompute_NonASCIIBytes(t *testing.T) {
	in := []byte{'$', 0x00, 0xFF, 0x80, '\t', '*', 0x01}
	if got := Compute(in).String(); got != "76" {
		t.Fatalf("Compute(% X)=%s want 76", in, got)
	}
}

func TestCompute_RangeExactness(t *testing.T) {
	base := []byte("$" + rmcBody + "*74")
	want := Compute(base)
	end := strings.IndexByte(string(base), '*')
	for i := 1; i < end; i++ {
		mut := append([]byte(nil), base...)
		mut[i] ^= 0x01
		if mut[i] == '*' {
			continue
		}
		if got := Compute(mut); got == want {
			t.Fatalf("flipping byte %d did not change checksum %s", i, got)
		}
	}
	// Bytes outside the range never matter.
	for _, i := range []int{0, end + 1, end + 2} {
		mut := append([]byte(nil), base...)
		mut[i] = 'Q'
		if i == 0 {
			// Dropping the '$' shifts nothing into the range: 'Q' becomes payload.
			if got, w := Compute(mut), Render(Sum(base)^'Q'); got != w {
				t.Fatalf("byte 0: got %s want %s", got, w)
			}
			continue
		}
		if got := Compute(mut); got != want {
			t.Fatalf("changing tail byte %d changed checksum: %s want %s", i, got, want)
		}
	}
}

func TestRender_ZeroPaddedUppercase(t *testing.T) {
	for v := 0; v < 256; v++ {
		want := fmt.Sprintf("%02X", v)
		if got := Render(byte(v)).String(); got != want {
			t.Fatalf("Render(%d)=%q want %q", v, got, want)
		}
	}
}

func TestChecksum_MarshalText(t *testing.T) {
	b, err := Render(0x0C).MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}
	if string(b) != "0C" {
		t.Fatalf("MarshalText()=%q want 0C", b)
	}
	if got := string(Render(0xA5).AppendTo([]byte("*"))); got != "*A5" {
		t.Fatalf("AppendTo=%q want *A5", got)
	}
}

func TestFrame(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{rmcBody, "$" + rmcBody + "*74"},
		{"$" + rmcBody + "*00", "$" + rmcBody + "*74"},
		{"PSRF100,0,9600,8,1,0*  ", "$PSRF100,0,9600,8,1,0*0C"},
		{"", "$*00"},
		{"$*", "$*00"},
	}
	for _, tc := range cases {
		got := string(Frame([]byte(tc.in)))
		if got != tc.want {
			t.Fatalf("Frame(%q)=%q want %q", tc.in, got, tc.want)
		}
		if ComputeString(got) != ComputeString(tc.in) {
			t.Fatalf("Frame(%q) changed the checksum", tc.in)
		}
	}
}

func TestFrame_DoesNotAliasInput(t *testing.T) {
	in := []byte("$GPX*")
	out := Frame(in)
	out[1] = 'Z'
	if string(in) != "$GPX*" {
		t.Fatalf("input mutated: %q", in)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	in := []byte("$" + ggaBody + "*")
	first := Compute(in)
	for i := 0; i < 100; i++ {
		if got := Compute(in); got != first {
			t.Fatalf("call %d: %s want %s", i, got, first)
		}
	}
}

func TestCompute_ConcurrentUse(t *testing.T) {
	inputs := []string{"$" + rmcBody + "*74", "$PSRF100,0,9600,8,1,0*", "$" + ggaBody}
	wants := []string{"74", "0C", "5D"}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := (g + i) % len(inputs)
				if got := ComputeString(inputs[k]).String(); got != wants[k] {
					errs <- fmt.Sprintf("goroutine %d: %q=%s want %s", g, inputs[k], got, wants[k])
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatal(e)
	}
}

func TestCompute_NoAllocs(t *testing.T) {
	in := []byte("$" + rmcBody + "*74")
	allocs := testing.AllocsPerRun(100, func() {
		_ = Compute(in)
	})
	if allocs != 0 {
		t.Fatalf("Compute allocs=%v want 0", allocs)
	}
}

func FuzzCompute(f *testing.F) {
	f.Add([]byte("$"+rmcBody+"*74"), []byte("74"))
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("$*"), []byte("  "))
	f.Fuzz(func(t *testing.T, body, tail []byte) {
		// Strip delimiters from the body so the range is known exactly.
		payload := strings.NewReplacer("*", "", "$", "").Replace(string(body))
		want := Render(xorAll(payload))

		for _, in := range []string{
			payload,
			"$" + payload,
			payload + "*" + string(tail),
			"$" + payload + "*" + string(tail),
		} {
			if got := ComputeString(in); got != want {
				t.Fatalf("ComputeString(%q)=%s want %s", in, got, want)
			}
			if got := Compute([]byte(in)); got != want {
				t.Fatalf("Compute(%q)=%s want %s", in, got, want)
			}
		}
	})
}

func BenchmarkCompute(b *testing.B) {
	in := []byte("$" + ggaBody + "*5D")
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		_ = Compute(in)
	}
}
