// Copyright 2024 The llar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package template implements literal token substitution for generated files.
//
// A placeholder is a delimited token of the form {NAME}, where NAME starts
// with a letter or underscore followed by letters, digits or underscores.
// A brace directly preceded by '$' never opens a placeholder and is never
// matched against a key, so Groovy and shell expressions such as
// ${buildDir} pass through untouched.
package template

import (
	"fmt"
	"sort"
	"strings"
)

// UnresolvedPlaceholderError reports a placeholder in a template that has no
// replacement.
type UnresolvedPlaceholderError struct {
	Token string // including braces, e.g. "{ID}"
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("unresolved placeholder %s", e.Token)
}

// Substitute replaces every literal occurrence of each key of replace in
// text with its value. Keys are matched as exact substrings; when several
// keys match at one position the longest wins. Replacement values are
// written as-is and never scanned again.
//
// Any placeholder in the output that is not a key fails with
// *UnresolvedPlaceholderError, whether it comes from text, from a
// replacement value or from a value joined with its surroundings.
// Keys that never occur are ignored.
func Substitute(text string, replace map[string]string) (string, error) {
	byFirst := indexKeys(replace)

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if !dollarBrace(text, i) {
			if key, ok := matchKey(text[i:], byFirst[text[i]]); ok {
				b.WriteString(replace[key])
				i += len(key)
				continue
			}
		}
		if n := placeholderAt(text, i); n > 0 {
			return "", &UnresolvedPlaceholderError{Token: text[i : i+n]}
		}
		b.WriteByte(text[i])
		i++
	}

	out := b.String()
	for i := 0; i < len(out); i++ {
		if n := placeholderAt(out, i); n > 0 {
			tok := out[i : i+n]
			if _, ok := replace[tok]; !ok {
				return "", &UnresolvedPlaceholderError{Token: tok}
			}
			i += n - 1
		}
	}
	return out, nil
}

// Tokens returns the placeholders in text in order of first appearance.
func Tokens(text string) []string {
	var tokens []string
	seen := make(map[string]bool)
	for i := 0; i < len(text); i++ {
		if n := placeholderAt(text, i); n > 0 {
			tok := text[i : i+n]
			if !seen[tok] {
				seen[tok] = true
				tokens = append(tokens, tok)
			}
			i += n - 1
		}
	}
	return tokens
}

// Unused returns the keys of replace that do not occur in text, sorted.
func Unused(text string, replace map[string]string) []string {
	var unused []string
	for key := range replace {
		if key != "" && !strings.Contains(text, key) {
			unused = append(unused, key)
		}
	}
	sort.Strings(unused)
	return unused
}

// indexKeys groups keys by first byte, longest first.
func indexKeys(replace map[string]string) map[byte][]string {
	byFirst := make(map[byte][]string)
	for key := range replace {
		if key == "" {
			continue
		}
		byFirst[key[0]] = append(byFirst[key[0]], key)
	}
	for _, keys := range byFirst {
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i]) != len(keys[j]) {
				return len(keys[i]) > len(keys[j])
			}
			return keys[i] < keys[j]
		})
	}
	return byFirst
}

func matchKey(s string, keys []string) (string, bool) {
	for _, key := range keys {
		if strings.HasPrefix(s, key) {
			return key, true
		}
	}
	return "", false
}

func dollarBrace(text string, i int) bool {
	return text[i] == '{' && i > 0 && text[i-1] == '$'
}

// placeholderAt returns the length of the placeholder starting at text[i],
// or 0 if there is none.
func placeholderAt(text string, i int) int {
	if text[i] != '{' || dollarBrace(text, i) {
		return 0
	}
	j := i + 1
	if j >= len(text) || !isNameStart(text[j]) {
		return 0
	}
	for j++; j < len(text) && isNameChar(text[j]); j++ {
	}
	if j >= len(text) || text[j] != '}' {
		return 0
	}
	return j - i + 1
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
