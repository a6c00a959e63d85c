// Package selftest runs the checksum engine against a fixed table of known
// sentences and reports mismatches.
package selftest

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"nmeasum/internal/nmea"
)

// Mismatch records one failing vector.
type Mismatch struct {
	Index int
	Input string
	Got   string
	Want  string
}

type Result struct {
	Checked    int
	Failed     int
	Mismatches []Mismatch
}

func (r Result) OK() bool { return r.Failed == 0 }

// Runner prints progress to Out. A nil Out discards it.
type Runner struct {
	Out     io.Writer
	Verbose bool
	Logger  zerolog.Logger
}

// Run checks every vector; a mismatch never stops the run.
func (r Runner) Run(vecs []Vector) Result {
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	var res Result
	fmt.Fprint(out, "Testing NMEA checksum: ")
	for i, v := range vecs {
		res.Checked++
		got := nmea.ComputeString(v.Input).String()
		if got == v.Want {
			continue
		}
		res.Failed++
		res.Mismatches = append(res.Mismatches, Mismatch{Index: i, Input: v.Input, Got: got, Want: v.Want})
		r.Logger.Warn().
			Int("index", i).
			Str("input", v.Input).
			Str("got", got).
			Str("want", v.Want).
			Msg("checksum mismatch")
		if r.Verbose {
			fmt.Fprintf(out, "\n    FAIL: %q returns %q instead of %q", v.Input, got, v.Want)
		}
	}

	if res.Failed == 0 {
		fmt.Fprint(out, "OK\n")
	} else {
		if r.Verbose {
			fmt.Fprint(out, "\n    ")
		}
		fmt.Fprintf(out, "FAILED %d checks\n", res.Failed)
	}
	r.Logger.Debug().Int("checked", res.Checked).Int("failed", res.Failed).Msg("selftest done")
	return res
}
