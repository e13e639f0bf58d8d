package service

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/nbutton23/zxcvbn-go"

	passwordDomain "github.com/allisson/fibrohash/internal/password/domain"
)

// maxRepeatLength caps the substring length searched for repetition, keeping the scan linear.
const maxRepeatLength = 16

// keyboardRows are the physical key rows checked for adjacency runs.
var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

// Dictionary matches shorter than these are too often accidental in random passwords.
const (
	minDictionaryWord  = 4
	minSubstitutedWord = 5

	// maxDictionaryScan bounds the runes handed to the dictionary matcher.
	maxDictionaryScan = 256
)

// extraWords extend the matcher's frequency lists with service-specific terms.
var extraWords = []string{
	"password", "admin", "user", "login", "test", "demo",
	"secret", "access", "secure", "private", "public",
	"qwerty", "letmein", "welcome", "dragon", "monkey",
}

// substitutions maps a letter to the look-alike that commonly replaces it.
var substitutions = map[rune]rune{
	'a': '@',
	'e': '3',
	'i': '1',
	'o': '0',
	's': '$',
	't': '7',
}

// detectPatterns runs every detector over runes and returns the findings ordered by
// position, then kind.
func detectPatterns(runes []rune) []passwordDomain.Pattern {
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}

	patterns := make([]passwordDomain.Pattern, 0)
	patterns = append(patterns, findSequential(runes, lowered)...)
	patterns = append(patterns, findKeyboard(runes, lowered)...)
	patterns = append(patterns, findRepetition(runes)...)
	patterns = append(patterns, findDictionary(runes)...)

	slices.SortStableFunc(patterns, func(a, b passwordDomain.Pattern) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return patterns
}

// sequenceGroup returns 'd' for ASCII digits, 'a' for ASCII letters and 0 otherwise.
func sequenceGroup(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return 'd'
	case r >= 'a' && r <= 'z':
		return 'a'
	default:
		return 0
	}
}

// findSequential reports maximal runs of three or more letters or digits whose values
// step by exactly +1 or -1 (e.g., "abc", "CBA", "6789").
func findSequential(runes, lowered []rune) []passwordDomain.Pattern {
	var found []passwordDomain.Pattern
	n := len(lowered)

	step := func(i int) rune {
		g := sequenceGroup(lowered[i])
		if g == 0 || g != sequenceGroup(lowered[i+1]) {
			return 0
		}
		return lowered[i+1] - lowered[i]
	}

	for i := 0; i < n-2; {
		s := step(i)
		if s != 1 && s != -1 {
			i++
			continue
		}
		j := i + 1
		for j+1 < n && step(j) == s {
			j++
		}
		if runLen := j - i + 1; runLen >= 3 {
			severity := passwordDomain.SeverityMedium
			if runLen >= 4 {
				severity = passwordDomain.SeverityHigh
			}
			found = append(found, passwordDomain.Pattern{
				Kind:     passwordDomain.PatternSequential,
				Value:    string(runes[i : j+1]),
				Position: i,
				Severity: severity,
			})
		}
		i = j
	}
	return found
}

// findKeyboard reports three-key windows of each keyboard row, forwards or backwards.
func findKeyboard(runes, lowered []rune) []passwordDomain.Pattern {
	var found []passwordDomain.Pattern
	for _, row := range keyboardRows {
		forward := []rune(row)
		backward := slices.Clone(forward)
		slices.Reverse(backward)

		for _, seq := range [][]rune{forward, backward} {
			for k := 0; k+3 <= len(seq); k++ {
				pos := indexRunes(lowered, seq[k:k+3])
				if pos < 0 {
					continue
				}
				found = append(found, passwordDomain.Pattern{
					Kind:     passwordDomain.PatternKeyboard,
					Value:    string(runes[pos : pos+3]),
					Position: pos,
					Severity: passwordDomain.SeverityMedium,
				})
			}
		}
	}
	return found
}

// findRepetition reports runs of three or more identical characters and substrings that
// occur at least twice without overlapping. A repeated substring is dropped when a
// longer repeated substring contains it.
func findRepetition(runes []rune) []passwordDomain.Pattern {
	var found []passwordDomain.Pattern
	n := len(runes)

	for i := 0; i < n; {
		j := i + 1
		for j < n && runes[j] == runes[i] {
			j++
		}
		if j-i >= 3 {
			found = append(found, passwordDomain.Pattern{
				Kind:     passwordDomain.PatternRepetition,
				Value:    string(runes[i:j]),
				Position: i,
				Severity: passwordDomain.SeverityMedium,
			})
		}
		i = j
	}

	type candidate struct {
		value    []rune
		position int
	}
	var candidates []candidate

	for size := 2; size <= min(n/2, maxRepeatLength); size++ {
		firstSeen := make(map[string]int)
		lastEnd := make(map[string]int)
		counts := make(map[string]int)
		var order []string

		for pos := 0; pos+size <= n; pos++ {
			key := string(runes[pos : pos+size])
			if _, ok := firstSeen[key]; !ok {
				firstSeen[key] = pos
				lastEnd[key] = pos + size
				counts[key] = 1
				order = append(order, key)
				continue
			}
			if pos >= lastEnd[key] {
				counts[key]++
				lastEnd[key] = pos + size
			}
		}

		for _, key := range order {
			if counts[key] >= 2 {
				candidates = append(candidates, candidate{value: []rune(key), position: firstSeen[key]})
			}
		}
	}

	for i, c := range candidates {
		contained := false
		for j, other := range candidates {
			if i != j && len(other.value) > len(c.value) && indexRunes(other.value, c.value) >= 0 {
				contained = true
				break
			}
		}
		if contained {
			continue
		}
		severity := passwordDomain.SeverityLow
		if len(c.value) >= 3 {
			severity = passwordDomain.SeverityMedium
		}
		found = append(found, passwordDomain.Pattern{
			Kind:     passwordDomain.PatternRepetition,
			Value:    string(c.value),
			Position: c.position,
			Severity: severity,
		})
	}
	return found
}

// findDictionary reports dictionary words, including l33t-spelled ones, from the
// minimum-entropy match sequence, plus the character substitutions used inside them.
func findDictionary(runes []rune) []passwordDomain.Pattern {
	if len(runes) == 0 {
		return nil
	}
	scanned := runes[:min(len(runes), maxDictionaryScan)]

	// The matcher indexes bytes; masking non-ASCII runes keeps its offsets equal to rune offsets.
	masked := make([]byte, len(scanned))
	for i, r := range scanned {
		if r <= unicode.MaxASCII {
			masked[i] = byte(r)
		}
	}

	var found []passwordDomain.Pattern
	seenWord := make(map[int]bool)
	seenSub := make(map[string]bool)

	strength := zxcvbn.PasswordStrength(string(masked), extraWords)
	for _, m := range strength.MatchSequence {
		if m.Pattern != "dictionary" || m.I < 0 || m.J >= len(scanned) || m.I > m.J {
			continue
		}
		span := scanned[m.I : m.J+1]
		token := []rune(m.Token)
		substituted := !strings.EqualFold(m.Token, string(span))

		minLen := minDictionaryWord
		if substituted {
			minLen = minSubstitutedWord
		}
		if len(span) < minLen || seenWord[m.I] {
			continue
		}
		seenWord[m.I] = true

		found = append(found, passwordDomain.Pattern{
			Kind:     passwordDomain.PatternDictionary,
			Value:    string(span),
			Position: m.I,
			Severity: passwordDomain.SeverityHigh,
		})

		if !substituted || len(token) != len(span) {
			continue
		}
		for k, r := range span {
			letter := unicode.ToLower(token[k])
			if substitutions[letter] != r {
				continue
			}
			value := string(letter) + "->" + string(r)
			if seenSub[value] {
				continue
			}
			seenSub[value] = true
			found = append(found, passwordDomain.Pattern{
				Kind:     passwordDomain.PatternSubstitution,
				Value:    value,
				Position: m.I + k,
				Severity: passwordDomain.SeverityLow,
			})
		}
	}
	return found
}

// indexRunes returns the index of the first occurrence of needle in hay, or -1.
func indexRunes(hay, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(hay); i++ {
		if slices.Equal(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
