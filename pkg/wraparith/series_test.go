package wraparith

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/rotary/pkg/log"
)

func TestSeriesAdd_uint8(t *testing.T) {
	tests := []struct {
		name        string
		a, b, limit uint8
		want        uint8
	}{
		{"no wrap", 2, 3, 7, 5},
		{"saturday plus two", 6, 2, 7, 1},
		{"sunday plus one", 7, 1, 7, 1},
		{"full week", 1, 7, 7, 1},
		{"plus zero", 1, 0, 7, 1},
		{"large step", 3, 200, 7, 7},
		{"end of month", 31, 1, 31, 1},
		{"type max limit", math.MaxUint8, 1, math.MaxUint8, 1},
		{"single element", 1, 99, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeriesAdd(tt.a, tt.b, tt.limit))
		})
	}
}

func TestSeriesAdd_uint16(t *testing.T) {
	assert.Equal(t, uint16(1), SeriesAdd[uint16](math.MaxUint16, 1, math.MaxUint16))
	assert.Equal(t, uint16(1), SeriesAdd[uint16](365, 2, 366))
}

func TestSeriesSub_uint8(t *testing.T) {
	tests := []struct {
		name        string
		a, b, limit uint8
		want        uint8
	}{
		{"no wrap", 7, 1, 7, 6},
		{"two minus six", 2, 6, 7, 3},
		{"monday minus one", 1, 1, 7, 7},
		{"full week", 7, 7, 7, 7},
		{"large step", 1, 15, 7, 7},
		{"first of month", 1, 1, 31, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeriesSub(tt.a, tt.b, tt.limit))
		})
	}
}

func TestSeriesSub_uint32(t *testing.T) {
	assert.Equal(t, uint32(math.MaxUint32), SeriesSub[uint32](1, 1, math.MaxUint32))
}

func TestSeriesMod_uint8(t *testing.T) {
	tests := []struct {
		name     string
		a, limit uint8
		want     uint8
	}{
		{"ten mod seven", 10, 7, 3},
		{"limit maps to limit", 7, 7, 7},
		{"zero maps to limit", 0, 7, 7},
		{"multiple maps to limit", 14, 7, 7},
		{"type max", math.MaxUint8, 7, 3},
		{"limit one", 200, 1, 1},
		{"below limit", 5, 31, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeriesMod(tt.a, tt.limit))
		})
	}
}

func TestSeriesMod_uint64(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), SeriesMod[uint64](0, math.MaxUint64))
	assert.Equal(t, uint64(1), SeriesMod[uint64](math.MaxUint64, math.MaxUint64-1))
}

func TestSeries_outsidePrecondition(t *testing.T) {
	// Not meaningful, but never out of range.
	for _, a := range []uint8{0, 8, math.MaxUint8} {
		got := SeriesAdd(a, 3, 7)
		assert.GreaterOrEqual(t, got, uint8(1))
		assert.LessOrEqual(t, got, uint8(7))

		got = SeriesSub(a, 3, 7)
		assert.GreaterOrEqual(t, got, uint8(1))
		assert.LessOrEqual(t, got, uint8(7))
	}
}

func TestSeries_zeroLimit(t *testing.T) {
	for name, f := range map[string]func(){
		"add": func() { SeriesAdd[uint8](1, 1, 0) },
		"sub": func() { SeriesSub[uint16](1, 1, 0) },
		"mod": func() { SeriesMod[uint32](1, 0) },
	} {
		t.Run(name, func(t *testing.T) {
			err := recoverErr(f)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrZeroLimit))
		})
	}
}

func TestSeries_zeroLimitIsLogged(t *testing.T) {
	t.Cleanup(func() {
		log.Root = zerolog.Nop()
		log.Arith = zerolog.Nop()
	})
	buf := &bytes.Buffer{}
	log.Init(log.Options{LogLevel: zerolog.InfoLevel, Type: log.JSONLogger, Out: buf})

	err := recoverErr(func() { SeriesMod[uint8](3, 0) })
	require.ErrorIs(t, err, ErrZeroLimit)

	out := buf.String()
	assert.Contains(t, out, `"component":"arith"`)
	assert.Contains(t, out, `"op":"series mod"`)
	assert.Contains(t, out, "contract violation")
}

func TestValidateSeries(t *testing.T) {
	require.NoError(t, ValidateSeries[uint8](1, 7))
	require.NoError(t, ValidateSeries[uint8](7, 7))

	assert.ErrorIs(t, ValidateSeries[uint8](0, 7), ErrOutsideSeries)
	assert.ErrorIs(t, ValidateSeries[uint8](8, 7), ErrOutsideSeries)
	assert.ErrorIs(t, ValidateSeries[uint8](1, 0), ErrZeroLimit)
	assert.EqualError(t, ValidateSeries[uint16](40, 31), "value outside series: 40 not in [1, 31]")
}
