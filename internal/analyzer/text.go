package analyzer

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// sentence is a sentence of the document with its character span
type sentence struct {
	text  string
	start int
	end   int
}

// splitSentences breaks text into sentences on terminal punctuation
// followed by whitespace, keeping the [start,end) character span of
// each sentence in the original text.
func splitSentences(text string) []sentence {
	var sentences []sentence
	runes := []rune(text)
	start := 0

	flush := func(end int) {
		raw := string(runes[start:end])
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			lead := leadingSpace(raw)
			sentences = append(sentences, sentence{
				text:  trimmed,
				start: start + lead,
				end:   start + lead + len([]rune(trimmed)),
			})
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// consume the whole punctuation run ("?!", "...")
		j := i
		for j+1 < len(runes) && isTerminal(runes[j+1]) {
			j++
		}
		if j+1 >= len(runes) || isSpace(runes[j+1]) {
			flush(j + 1)
		}
		i = j
	}
	if start < len(runes) {
		flush(len(runes))
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func leadingSpace(s string) int {
	count := 0
	for _, r := range s {
		if !isSpace(r) {
			break
		}
		count++
	}
	return count
}

// countWords counts word-boundary tokens in s.
func countWords(s string) int {
	return len(wordPattern.FindAllString(s, -1))
}

// splitParagraphs splits text on blank lines, keeping the character
// span of each paragraph.
func splitParagraphs(text string) []sentence {
	var paragraphs []sentence
	runes := []rune(text)
	start := 0
	i := 0
	for i < len(runes) {
		// a blank line (two consecutive newlines, possibly with
		// intervening spaces) ends the current paragraph
		if runes[i] == '\n' {
			j := i + 1
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t' || runes[j] == '\r') {
				j++
			}
			if j < len(runes) && runes[j] == '\n' {
				paragraphs = appendParagraph(paragraphs, runes, start, i)
				for j < len(runes) && isSpace(runes[j]) {
					j++
				}
				start = j
				i = j
				continue
			}
		}
		i++
	}
	return appendParagraph(paragraphs, runes, start, len(runes))
}

func appendParagraph(paragraphs []sentence, runes []rune, start, end int) []sentence {
	if start >= end {
		return paragraphs
	}
	raw := string(runes[start:end])
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return paragraphs
	}
	lead := leadingSpace(raw)
	return append(paragraphs, sentence{
		text:  trimmed,
		start: start + lead,
		end:   start + lead + len([]rune(trimmed)),
	})
}

// excerptOf returns at most max runes of s, marking the cut.
func excerptOf(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
