// Package patterns recognizes candlestick patterns over an OHLCV series.
// Every pattern is a pure predicate over a small fixed window of
// consecutive bars; the set of known patterns is closed.
package patterns

import (
	"fmt"

	"stockana/series"
)

// ID identifies one of the known candlestick patterns.
type ID string

const (
	Doji               ID = "Doji"
	DragonflyDoji      ID = "DragonflyDoji"
	GravestoneDoji     ID = "GravestoneDoji"
	Hammer             ID = "Hammer"
	InvertedHammer     ID = "InvertedHammer"
	HangingMan         ID = "HangingMan"
	ShootingStar       ID = "ShootingStar"
	BullishEngulfing   ID = "BullishEngulfing"
	BearishEngulfing   ID = "BearishEngulfing"
	PiercingLine       ID = "PiercingLine"
	DarkCloudCover     ID = "DarkCloudCover"
	MorningStar        ID = "MorningStar"
	EveningStar        ID = "EveningStar"
	ThreeWhiteSoldiers ID = "ThreeWhiteSoldiers"
	ThreeBlackCrows    ID = "ThreeBlackCrows"
)

// Direction is the bias a matched pattern signals.
type Direction string

const (
	Bullish Direction = "bullish"
	Bearish Direction = "bearish"
	Neutral Direction = "neutral"
)

// DefaultEpsilon is the body-to-range ratio under which a candle counts as
// a doji.
const DefaultEpsilon = 0.1

// Pattern couples an ID with its window size, direction, and predicate.
type Pattern struct {
	ID     ID
	Dir    Direction
	Window int // consecutive bars the predicate needs, most recent last

	match func(bars []series.Bar, eps float64) bool
}

// Match evaluates the pattern over exactly Window consecutive bars, most
// recent last. eps only affects the doji family; pass DefaultEpsilon
// otherwise.
func (p Pattern) Match(bars []series.Bar, eps float64) (bool, error) {
	if len(bars) != p.Window {
		return false, fmt.Errorf("%w: %s needs %d bars, got %d",
			series.ErrInvalidParameter, p.ID, p.Window, len(bars))
	}
	if eps <= 0 {
		return false, fmt.Errorf("%w: epsilon must be positive, got %v", series.ErrInvalidParameter, eps)
	}
	return p.match(bars, eps), nil
}

// All enumerates every known pattern. Order matters only for presentation.
var All = []Pattern{
	{Doji, Neutral, 1, func(b []series.Bar, eps float64) bool { return isDoji(b[0], eps) }},
	{DragonflyDoji, Bullish, 1, func(b []series.Bar, eps float64) bool { return isDragonfly(b[0], eps) }},
	{GravestoneDoji, Bearish, 1, func(b []series.Bar, eps float64) bool { return isGravestone(b[0], eps) }},
	{Hammer, Bullish, 1, func(b []series.Bar, _ float64) bool { return isHammer(b[0]) }},
	{InvertedHammer, Bullish, 1, func(b []series.Bar, _ float64) bool { return isInvertedHammer(b[0]) }},
	{HangingMan, Bearish, 2, func(b []series.Bar, _ float64) bool { return isHangingMan(b[1], b[0]) }},
	{ShootingStar, Bearish, 2, func(b []series.Bar, _ float64) bool { return isShootingStar(b[1], b[0]) }},
	{BullishEngulfing, Bullish, 2, func(b []series.Bar, _ float64) bool { return IsBullishEngulfing(b[1], b[0]) }},
	{BearishEngulfing, Bearish, 2, func(b []series.Bar, _ float64) bool { return IsBearishEngulfing(b[1], b[0]) }},
	{PiercingLine, Bullish, 2, func(b []series.Bar, _ float64) bool { return isPiercingLine(b[1], b[0]) }},
	{DarkCloudCover, Bearish, 2, func(b []series.Bar, _ float64) bool { return isDarkCloudCover(b[1], b[0]) }},
	{MorningStar, Bullish, 3, func(b []series.Bar, eps float64) bool { return isMorningStar(b[0], b[1], b[2], eps) }},
	{EveningStar, Bearish, 3, func(b []series.Bar, _ float64) bool { return isEveningStar(b[0], b[1], b[2]) }},
	{ThreeWhiteSoldiers, Bullish, 3, func(b []series.Bar, _ float64) bool { return isThreeWhiteSoldiers(b[0], b[1], b[2]) }},
	{ThreeBlackCrows, Bearish, 3, func(b []series.Bar, _ float64) bool { return isThreeBlackCrows(b[0], b[1], b[2]) }},
}

// ----- Single-candle predicates -----

func isDoji(b series.Bar, eps float64) bool {
	return b.Body() <= eps*b.Range()
}

func isDragonfly(b series.Bar, eps float64) bool {
	return isDoji(b, eps) && b.LowerShadow() >= b.Body() && b.LowerShadow() > 0
}

func isGravestone(b series.Bar, eps float64) bool {
	return isDoji(b, eps) && b.UpperShadow() >= b.Body() && b.UpperShadow() > 0
}

// isHammer: small body near the top of the range, lower shadow at least
// twice the body, negligible upper shadow.
func isHammer(b series.Bar) bool {
	body := b.Body()
	if body == 0 {
		return false
	}
	return b.LowerShadow() >= 2*body && b.UpperShadow() <= DefaultEpsilon*b.Range()
}

// isInvertedHammer mirrors the hammer: long upper shadow, small body in
// the lower third of the range.
func isInvertedHammer(b series.Bar) bool {
	body := b.Body()
	if body == 0 {
		return false
	}
	return b.UpperShadow() > 2*body && body < b.Range()/3
}

// ----- Two-candle predicates (cur is the most recent bar) -----

// IsBullishEngulfing reports a bearish prev whose body is fully contained
// by a bullish cur body.
func IsBullishEngulfing(cur, prev series.Bar) bool {
	return cur.Bullish() && prev.Bearish() &&
		cur.Open < prev.Close && cur.Close > prev.Open
}

// IsBearishEngulfing is the mirror: a bullish prev engulfed by a bearish cur.
func IsBearishEngulfing(cur, prev series.Bar) bool {
	return prev.Bullish() && cur.Bearish() &&
		cur.Open > prev.Close && cur.Close < prev.Open
}

func isPiercingLine(cur, prev series.Bar) bool {
	return prev.Bearish() && cur.Bullish() &&
		cur.Open < prev.Close && cur.Close > (prev.Open+prev.Close)/2
}

func isDarkCloudCover(cur, prev series.Bar) bool {
	return prev.Bullish() && cur.Bearish() &&
		cur.Open > prev.Close && cur.Close < (prev.Open+prev.Close)/2
}

func isHangingMan(cur, prev series.Bar) bool {
	return isHammer(cur) && cur.Bearish() && prev.Close < cur.Close
}

func isShootingStar(cur, prev series.Bar) bool {
	return isInvertedHammer(cur) && cur.Bearish() && prev.Close < cur.Close
}

// ----- Three-candle predicates (first, second, third in time order) -----

func isMorningStar(first, second, third series.Bar, eps float64) bool {
	if !first.Bearish() || !third.Bullish() {
		return false
	}
	// The star is a doji or a body small relative to the first candle's range.
	smallStar := isDoji(second, eps) || second.Body() <= eps*first.Range()
	// The third candle must close at least halfway up the first body.
	recovered := third.Close >= (first.Open+first.Close)/2
	return smallStar && recovered
}

func isEveningStar(first, second, third series.Bar) bool {
	if !first.Bullish() || !third.Bearish() {
		return false
	}
	starLow := second.Open
	if second.Close < starLow {
		starLow = second.Close
	}
	return starLow < first.Close && third.Close < second.Close
}

func isThreeWhiteSoldiers(first, second, third series.Bar) bool {
	return first.Bullish() && second.Bullish() && third.Bullish() &&
		first.Close < second.Open && second.Open < second.Close && second.Close < third.Open
}

func isThreeBlackCrows(first, second, third series.Bar) bool {
	return first.Bearish() && second.Bearish() && third.Bearish() &&
		first.Open > second.Open && second.Open > third.Open
}
