package snowflake

import (
	"errors"
	"fmt"
	"math"
)

const (
	// base62Chars Base62 인코딩에 사용되는 문자셋입니다.
	// 0-9, A-Z, a-z 순서는 ASCII 코드 순서와 일치하므로, 같은 길이의 인코딩 결과끼리는
	// 문자열 비교 결과가 숫자 비교 결과와 같습니다.
	base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	base62Len = uint64(len(base62Chars))

	// base62IDLength 63비트 양의 정수(math.MaxInt64 = "AzL8n0Y58m7")를 표현하는 데 필요한 자릿수
	base62IDLength = 11
)

var errEmptyBase62 = errors.New("빈 문자열입니다")

// appendBase62FixedLength 정수를 Base62로 인코딩하되, 부족한 자릿수는 앞에 '0'을 채워 고정 길이를 맞춥니다.
//
// 실제 자릿수가 length보다 길면 잘라내지 않고 모두 표현합니다.
// 버퍼의 끝에서부터 앞으로 채워 나가므로 dst의 용량이 충분하면 메모리 할당이 발생하지 않습니다.
func appendBase62FixedLength(dst []byte, num uint64, length int) []byte {
	// 1. 숫자를 표현하는 데 필요한 자릿수 계산
	digits := 1
	for temp := num / base62Len; temp > 0; temp /= base62Len {
		digits++
	}

	appendLen := length
	if digits > length {
		appendLen = digits
	}

	// 2. 버퍼 확장
	startLen := len(dst)
	targetLen := startLen + appendLen
	if cap(dst) >= targetLen {
		dst = dst[:targetLen]
	} else {
		dst = append(dst, make([]byte, appendLen)...)
	}

	// 3. 뒤에서부터 앞으로 채우기
	idx := targetLen - 1
	for {
		dst[idx] = base62Chars[num%base62Len]
		num /= base62Len
		idx--
		if num == 0 {
			break
		}
	}

	// 4. 남은 앞부분을 '0'으로 패딩
	for ; idx >= startLen; idx-- {
		dst[idx] = base62Chars[0]
	}

	return dst
}

// base62Digit 문자 하나를 Base62 자릿값으로 변환합니다. 문자셋에 없는 문자이면 false를 반환합니다.
func base62Digit(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10, true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 36, true
	default:
		return 0, false
	}
}

// parseBase62 Base62 문자열을 63비트 양의 정수로 해석합니다.
func parseBase62(s string) (uint64, error) {
	if len(s) == 0 {
		return 0, errEmptyBase62
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		d, ok := base62Digit(s[i])
		if !ok {
			return 0, fmt.Errorf("허용되지 않는 문자 %q (위치 %d)", s[i], i)
		}

		// n*62 + d 가 math.MaxInt64를 넘지 않는지 곱셈 전에 확인합니다.
		if n > (math.MaxInt64-d)/base62Len {
			return 0, errors.New("63비트 범위를 초과합니다")
		}
		n = n*base62Len + d
	}

	return n, nil
}
