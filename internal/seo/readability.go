// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seo computes readability and on-page SEO quality scores for
// content records. All functions are pure: same inputs, same outputs,
// no I/O, so they can be unit-tested with literal strings.
package seo

import (
	"math"
	"strings"
	"unicode"
)

// FleschReadingEase computes the Flesch reading-ease score for a text.
// Higher is easier to read: 90-100 reads like a children's book, 0-30
// like an academic paper. Scores can exceed [0, 100] for degenerate
// input; callers treat the value as a band, not a percentage.
//
// The formula is 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
func FleschReadingEase(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))

	// One decimal place, matching the stored column precision.
	return math.Round(score*10) / 10
}

// countSentences counts sentence terminators, treating runs like "?!" or
// "..." as a single boundary. Text with no terminator counts as one
// sentence.
func countSentences(text string) int {
	count := 0
	inTerminator := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				count++
				inTerminator = true
			}
		default:
			inTerminator = false
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// countSyllables estimates the syllable count of a single word by counting
// vowel groups, with the usual silent-e adjustment. Every word counts as
// at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	runes := make([]rune, 0, len(word))
	for _, r := range word {
		if unicode.IsLetter(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return 1
	}

	for _, r := range runes {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Trailing silent e: "make" has one spoken syllable, not two.
	if len(runes) > 2 && runes[len(runes)-1] == 'e' && !isVowel(runes[len(runes)-2]) {
		count--
	}

	if count < 1 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
