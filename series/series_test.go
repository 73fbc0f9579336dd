package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func flatBar(n int, close float64) Bar {
	return Bar{
		Time:   day(n),
		Open:   close,
		High:   close + 1,
		Low:    close - 1,
		Close:  close,
		Volume: 1000,
	}
}

func TestNewValidSeries(t *testing.T) {
	s, err := New([]Bar{flatBar(0, 10), flatBar(1, 11), flatBar(2, 9)})
	assert.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 11.0, s.Bar(1).Close)
	assert.Equal(t, 9.0, s.Last().Close)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestNewRejectsDuplicateTimestamps(t *testing.T) {
	b := flatBar(0, 10)
	_, err := New([]Bar{b, b})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewRejectsUnsortedTimestamps(t *testing.T) {
	_, err := New([]Bar{flatBar(1, 10), flatBar(0, 11)})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewRejectsBadBounds(t *testing.T) {
	bad := Bar{Time: day(0), Open: 10, High: 9, Low: 8, Close: 9.5, Volume: 1}
	_, err := New([]Bar{bad})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	negVol := Bar{Time: day(0), Open: 10, High: 11, Low: 9, Close: 10, Volume: -1}
	_, err = New([]Bar{negVol})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewCopiesInput(t *testing.T) {
	bars := []Bar{flatBar(0, 10), flatBar(1, 11)}
	s, err := New(bars)
	assert.NoError(t, err)

	bars[0].Close = 999
	assert.Equal(t, 10.0, s.Bar(0).Close)
}

func TestColumnSelectors(t *testing.T) {
	b := Bar{Time: day(0), Open: 1, High: 4, Low: 0.5, Close: 3, Volume: 42}
	assert.Equal(t, 1.0, b.Value(Open))
	assert.Equal(t, 4.0, b.Value(High))
	assert.Equal(t, 0.5, b.Value(Low))
	assert.Equal(t, 3.0, b.Value(Close))
	assert.Equal(t, 42.0, b.Value(Volume))
}

func TestBarAnatomy(t *testing.T) {
	b := Bar{Time: day(0), Open: 9.8, High: 10.5, Low: 9.0, Close: 10.2, Volume: 1}
	assert.True(t, b.Bullish())
	assert.False(t, b.Bearish())
	assert.InDelta(t, 0.4, b.Body(), 1e-12)
	assert.InDelta(t, 0.3, b.UpperShadow(), 1e-12)
	assert.InDelta(t, 0.8, b.LowerShadow(), 1e-12)
	assert.InDelta(t, 1.5, b.Range(), 1e-12)
}

func TestColumnDerivedFullyDefined(t *testing.T) {
	s, err := New([]Bar{flatBar(0, 10), flatBar(1, 11)})
	assert.NoError(t, err)

	d := s.ColumnDerived(Close)
	assert.Equal(t, s.Len(), d.Len())
	assert.Equal(t, d.Len(), d.DefinedCount())
	v, ok := d.At(1)
	assert.True(t, ok)
	assert.Equal(t, 11.0, v)
}

func TestDerivedWarmup(t *testing.T) {
	d := NewDerived("x", []time.Time{day(0), day(1), day(2)})
	assert.Equal(t, -1, d.FirstDefined())

	d.Set(2, 1.5)
	assert.Equal(t, 2, d.FirstDefined())
	assert.False(t, d.Defined(0))
	_, ok := d.At(1)
	assert.False(t, ok)
	v, ok := d.At(2)
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)
}

func TestAlignDetectsMismatch(t *testing.T) {
	a := NewDerived("a", []time.Time{day(0), day(1)})
	b := NewDerived("b", []time.Time{day(0), day(2)})
	assert.ErrorIs(t, Align(a, b), ErrAlignment)

	c := NewDerived("c", []time.Time{day(0)})
	assert.ErrorIs(t, Align(a, c), ErrAlignment)

	d := NewDerived("d", []time.Time{day(0), day(1)})
	assert.NoError(t, Align(a, d))
}
