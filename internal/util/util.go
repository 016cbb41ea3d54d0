// Package util содержит чистые функции, общие для сервиса.
package util

import "strings"

// NormalizeURL приводит URL к виду, пригодному для хранения и генерации кода:
// без схемы добавляется http://, в конец добавляется "/".
// Функция идемпотентна и не возвращает ошибок.
func NormalizeURL(raw string) string {
	u := raw
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "http://" + u
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

// SplitList разбирает список значений через запятую, отбрасывая пустые.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
