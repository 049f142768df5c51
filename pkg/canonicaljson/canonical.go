package canonicaljson

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Canonicalize serializes v to its canonical text form.
//
// The output carries no whitespace, object keys appear exactly once in
// sorted order, numbers use their shortest round-trippable decimal form,
// and only quote, backslash, and control characters are escaped. The
// function is pure: equal inputs always produce identical text.
func Canonicalize(v Value) string {
	var b strings.Builder
	appendCanonical(&b, v)
	return b.String()
}

func appendCanonical(b *strings.Builder, v Value) {
	switch v.kind {
	case KindUndefined, KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(formatNumber(v.num))
	case KindString:
		appendQuoted(b, v.str)
	case KindArray:
		b.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			appendCanonical(b, elem)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, k := range v.sortedKeys() {
			if i > 0 {
				b.WriteByte(',')
			}
			appendQuoted(b, k)
			b.WriteByte(':')
			appendCanonical(b, v.obj[k])
		}
		b.WriteByte('}')
	}
}

// formatNumber renders f in ECMAScript Number::toString shortest form,
// which is what interoperating serializers (and RFC 8785) emit: fixed
// notation for magnitudes in (1e-6, 1e21), exponent notation outside that
// range, no superfluous zeros anywhere. Non-finite values render as null
// and negative zero renders as 0.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	// Shortest significant digits plus decimal exponent via strconv, then
	// reassembled under the ECMAScript placement rules.
	mant := strconv.FormatFloat(f, 'e', -1, 64) // "d.ddd…e±dd"
	eIdx := strings.IndexByte(mant, 'e')
	digits := strings.Replace(mant[:eIdx], ".", "", 1)
	exp, _ := strconv.Atoi(mant[eIdx+1:])

	k := len(digits)
	n := exp + 1 // value == digits × 10^(n-k)

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	default:
		expPart := fmt.Sprintf("e+%d", n-1)
		if n-1 < 0 {
			expPart = fmt.Sprintf("e%d", n-1)
		}
		if k == 1 {
			return sign + digits + expPart
		}
		return sign + digits[:1] + "." + digits[1:] + expPart
	}
}

// appendQuoted writes s as a canonical JSON string literal. Only quote,
// backslash, and control characters below 0x20 are escaped; everything
// else, including all non-ASCII text, passes through as UTF-8.
func appendQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if c < 0x20 {
				fmt.Fprintf(b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
}

// codeUnitLess orders strings by UTF-16 code unit, matching the key order
// previously hashed chains were built with. This differs from code-point
// order only when one key contains characters outside the basic
// multilingual plane; switching to code-point order would silently change
// every hash over such payloads, so the code-unit order is kept on purpose.
func codeUnitLess(a, b string) bool {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}
