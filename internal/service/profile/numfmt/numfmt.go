// Package numfmt 페이지에서 추출한 숫자 텍스트를 정수로 해석하고 억/만 단위의 축약 표기로 변환합니다.
//
//	r := numfmt.Normalize("1,234,567,890")
//	// r.Number   -> 1234567890
//	// r.Readable -> "12억3456만"
package numfmt

import (
	"strconv"
	"strings"
)

const (
	eok = 100_000_000
	man = 10_000
)

// Result 숫자 텍스트의 정규화 결과입니다.
//
// 숫자가 하나도 없거나 uint64 범위를 벗어나면 Number와 Readable은 모두 nil입니다.
// Readable이 빈 문자열("")인 경우는 값이 0일 때뿐이며 nil과 구분됩니다.
type Result struct {
	Raw      string
	Digits   string
	Number   *uint64
	Readable *string
}

// Normalize 텍스트에서 ASCII 숫자만 남겨 정수로 해석하고 축약 표기를 함께 계산합니다.
func Normalize(text string) Result {
	r := Result{Raw: text, Digits: digitsOnly(text)}
	if r.Digits == "" {
		return r
	}

	n, err := strconv.ParseUint(r.Digits, 10, 64)
	if err != nil {
		return r
	}

	readable := Readable(n)
	r.Number = &n
	r.Readable = &readable

	return r
}

// Readable 정수를 억/만 단위로 축약합니다.
//
// 억 단위가 있으면 만 미만의 나머지는 생략하며, 0은 빈 문자열을 반환합니다.
//
//	Readable(1234567890) // "12억3456만"
//	Readable(50000)      // "5만"
//	Readable(123456)     // "12만3456"
func Readable(n uint64) string {
	e := n / eok
	m := (n % eok) / man
	rest := n % man

	var sb strings.Builder
	if e > 0 {
		sb.WriteString(strconv.FormatUint(e, 10))
		sb.WriteString("억")
	}
	if m > 0 {
		sb.WriteString(strconv.FormatUint(m, 10))
		sb.WriteString("만")
	}
	if e == 0 && rest > 0 {
		sb.WriteString(strconv.FormatUint(rest, 10))
	}

	return sb.String()
}

func digitsOnly(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
