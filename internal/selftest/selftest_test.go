package selftest

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_BuiltinTablePasses(t *testing.T) {
	var out bytes.Buffer
	res := Runner{Out: &out, Verbose: true, Logger: zerolog.Nop()}.Run(Vectors())

	require.True(t, res.OK(), "mismatches: %+v", res.Mismatches)
	assert.Equal(t, len(vectors), res.Checked)
	assert.Equal(t, "Testing NMEA checksum: OK\n", out.String())
}

func TestRun_CountsMismatchesAndContinues(t *testing.T) {
	vecs := []Vector{
		{Input: "$PSRF100,0,9600,8,1,0*", Want: "0C"},
		{Input: "$PSRF100,0,9600,8,1,0*", Want: "FF"},
		{Input: "$PGRMM,WGS 84*", Want: "06"},
		{Input: "", Want: "01"},
	}
	var out bytes.Buffer
	var logs bytes.Buffer
	res := Runner{Out: &out, Verbose: true, Logger: zerolog.New(&logs)}.Run(vecs)

	assert.False(t, res.OK())
	assert.Equal(t, 4, res.Checked)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Mismatches, 2)
	assert.Equal(t, Mismatch{Index: 1, Input: "$PSRF100,0,9600,8,1,0*", Got: "0C", Want: "FF"}, res.Mismatches[0])
	assert.Equal(t, Mismatch{Index: 3, Input: "", Got: "00", Want: "01"}, res.Mismatches[1])

	want := "Testing NMEA checksum: " +
		"\n    FAIL: \"$PSRF100,0,9600,8,1,0*\" returns \"0C\" instead of \"FF\"" +
		"\n    FAIL: \"\" returns \"00\" instead of \"01\"" +
		"\n    FAILED 2 checks\n"
	assert.Equal(t, want, out.String())
	assert.Contains(t, logs.String(), `"message":"checksum mismatch"`)
	assert.Contains(t, logs.String(), `"index":3`)
}

func TestRun_QuietOmitsFailLines(t *testing.T) {
	var out bytes.Buffer
	res := Runner{Out: &out, Logger: zerolog.Nop()}.Run([]Vector{{Input: "$A*", Want: "00"}})

	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "Testing NMEA checksum: FAILED 1 checks\n", out.String())
}

func TestRun_NilOutAndEmptyTable(t *testing.T) {
	res := Runner{Logger: zerolog.Nop()}.Run(nil)
	assert.True(t, res.OK())
	assert.Zero(t, res.Checked)
}

func TestVectors_ReturnsCopy(t *testing.T) {
	v := Vectors()
	require.NotEmpty(t, v)
	v[0].Want = "XX"
	assert.NotEqual(t, "XX", Vectors()[0].Want)
}
