package prettylist

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// cellText returns the text a value renders as.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat writes f in the shortest form that round-trips, switching to
// exponent notation outside [1e-4, 1e16). Whole values keep a ".0" so a float
// never reads as an integer.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// textWidth counts characters, not terminal cells.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - textWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		// Odd padding in an odd width puts the extra space on the left.
		left := pad/2 + pad&width&1
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// Sort key kinds, in the order keys of different kinds sort.
const (
	kindNil = iota
	kindNumber
	kindString
	kindTime
	kindOther
)

func cellKind(v any) int {
	if v == nil {
		return kindNil
	}
	if _, ok := asFloat(v); ok {
		return kindNumber
	}
	switch v.(type) {
	case string:
		return kindString
	case time.Time:
		return kindTime
	default:
		return kindOther
	}
}

// compareCells orders two sort keys. Keys of different kinds order by kind,
// so nil (a missing cell) sorts first and numbers sort before strings.
func compareCells(a, b any) int {
	ka, kb := cellKind(a), cellKind(b)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch ka {
	case kindNil:
		return 0
	case kindNumber:
		return compareNumbers(a, b)
	case kindString:
		return strings.Compare(a.(string), b.(string))
	case kindTime:
		return a.(time.Time).Compare(b.(time.Time))
	default:
		return strings.Compare(cellText(a), cellText(b))
	}
}

func compareNumbers(a, b any) int {
	if x, ok := asInt(a); ok {
		if y, ok := asInt(b); ok {
			return cmp.Compare(x, y)
		}
	}
	x, _ := asFloat(a)
	y, _ := asFloat(b)
	return cmp.Compare(x, y)
}

func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	switch x := v.(type) {
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
