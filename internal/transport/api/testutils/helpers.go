package testutils

import (
	"strings"

	"github.com/goccy/go-json"
)

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
func GenerateOverBytesUnderRunes(count int) string {
	const symbol = "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}

// MustJSON кодирует тело запроса, паникует на ошибке.
func MustJSON(v any) []byte {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return body
}
