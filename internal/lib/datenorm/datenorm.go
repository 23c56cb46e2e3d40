// Package datenorm приводит пользовательские строки с датой к time.Time.
//
// Поддерживаются два вида входных данных: календарная дата вида YYYY-MM-DD
// (опционально со временем) и целое число миллисекунд с начала эпохи.
package datenorm

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// MaxMillis ограничивает число миллисекунд в обе стороны от эпохи.
const MaxMillis = 8_640_000_000_000_000

var (
	calendarDate = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	// десятичная запись с экспонентой, Infinity или 0x/0o/0b без знака
	numeric    = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)$|^0[xX][0-9a-fA-F]+$|^0[oO][0-7]+$|^0[bB][01]+$`)
	leadingInt = regexp.MustCompile(`^([+-]?)(?:0[xX]([0-9a-fA-F]+)|(\d+))`)
)

// Normalize преобразует строку в дату. Второе значение false означает,
// что строка не является допустимой датой.
//
// Пустую строку вызывающая сторона обрабатывает сама (дата не передана).
func Normalize(s string) (time.Time, bool) {
	if calendarDate.MatchString(s) {
		parsed, err := now.ParseInLocation(time.UTC, s)
		if err != nil {
			return time.Time{}, false
		}
		return parsed.UTC(), true
	}

	ms, ok := millis(s)
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}

// millis принимает только числовую строку, а значение берёт из её
// целого префикса: "1500.9" дает 1500, "1e3" дает 1, "0x10" дает 16.
func millis(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !numeric.MatchString(s) {
		return 0, false
	}
	ms, ok := LeadingInt(s)
	if !ok || ms > MaxMillis || ms < -MaxMillis {
		return 0, false
	}
	return ms, true
}

// LeadingInt читает целое число в начале строки: необязательный знак,
// затем десятичные цифры или шестнадцатеричные после 0x. Остаток строки
// игнорируется. false означает, что в начале строки нет числа.
// Слишком большие значения прижимаются к границам int64.
func LeadingInt(s string) (int64, bool) {
	m := leadingInt.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	digits, base := m[3], 10
	if m[2] != "" {
		digits, base = m[2], 16
	}
	v, err := strconv.ParseInt(m[1]+digits, base, 64)
	if err != nil {
		// остается только выход за границы int64
		if m[1] == "-" {
			return math.MinInt64, true
		}
		return math.MaxInt64, true
	}
	return v, true
}
