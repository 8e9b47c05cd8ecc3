package xstrconv

const intSize = 32 << (^uint(0) >> 63) // 64
const IntSize = intSize

// Atoi is equivalent to ParseInt(s, 10, 0), converted to type int.
func Atoi(s string) (int, error) {
	const fnAtoi = "Atoi"

	sLen := len(s)
	if intSize == 32 && (0 < sLen && sLen < 10) ||
		intSize == 64 && (0 < sLen && sLen < 19) { // maxInt64 9223372036854775807
		// Fast path for small integers that fit int type.
		s0 := s
		if s[0] == '-' || s[0] == '+' {
			s = s[1:]
			if len(s) < 1 {
				return 0, syntaxError(fnAtoi, s0)
			}
		}

		n := 0
		for _, ch := range []byte(s) {
			ch -= '0'
			if ch > 9 {
				return 0, syntaxError(fnAtoi, s0)
			}
			n = n*10 + int(ch)
		}
		if s0[0] == '-' {
			n = -n
		}
		return n, nil
	}
	return atoiSlow(fnAtoi, s)
}

// atoiSlow handles empty, signed-long and overflowing input.
func atoiSlow(fn, s0 string) (int, error) {
	if s0 == "" {
		return 0, syntaxError(fn, s0)
	}
	s := s0
	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
		if s == "" {
			return 0, syntaxError(fn, s0)
		}
	}

	const cutoff = uint64(1<<uint(intSize-1)) / 10 * 10
	limit := uint64(1<<uint(intSize-1)) - 1
	if neg {
		limit++
	}

	var n uint64
	for _, ch := range []byte(s) {
		ch -= '0'
		if ch > 9 {
			return 0, syntaxError(fn, s0)
		}
		if n > cutoff/10 {
			return 0, rangeError(fn, s0)
		}
		n = n*10 + uint64(ch)
		if n > limit {
			return 0, rangeError(fn, s0)
		}
	}
	if neg {
		return int(-int64(n)), nil
	}
	return int(n), nil
}
