// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// excerptBodyLen is how much of a body is taken when a type has no
// editorial excerpt of its own.
const excerptBodyLen = 200

// truncateRunes cuts s to at most n runes. Limits are defined in
// characters, not bytes, so multibyte text truncates correctly.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// excerptFromBody derives a short excerpt from the opening of a body,
// appending an ellipsis when the body was cut.
func excerptFromBody(body string) string {
	r := []rune(body)
	if len(r) <= excerptBodyLen {
		return body
	}
	return string(r[:excerptBodyLen]) + "..."
}
