// Package lineparser classifies the lines of an if/elif/else block and
// flattens the block into the keyword stream, condition list and value list
// consumed by the conditiontree builder.
package lineparser

import (
	"fmt"
	"regexp"
	"strings"
)

// IndentUnit is the number of columns in one indentation level.
const IndentUnit = 4

// Kind is the grammatical class of a line.
type Kind int

// The line kinds.
const (
	// None is a line matching no rule.
	None Kind = iota
	// Condition is an `if <cond>:` or `elif <cond>:` line.
	Condition
	// Value is a `name = value` assignment.
	Value
	// Else is an `else:` line.
	Else
)

var kindString = map[Kind]string{
	None:      "none",
	Condition: "condition",
	Value:     "value",
	Else:      "else",
}

func (k Kind) String() string {
	if s, ok := kindString[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keyword is one token of the keyword stream.
type Keyword int

// The keyword tokens. An elif contributes Else followed by If.
const (
	If Keyword = iota
	ElseKeyword
)

func (k Keyword) String() string {
	switch k {
	case If:
		return "if"
	case ElseKeyword:
		return "else"
	default:
		return fmt.Sprintf("Keyword(%d)", int(k))
	}
}

// Line is a classified source line.
type Line struct {
	Kind Kind
	// Text is the condition for Condition lines and the `name = value`
	// fragment for Value lines. Else and None lines carry no text.
	Text string
	// Indent is the leading whitespace width divided by IndentUnit. It is
	// fractional when the width is not a multiple of the unit.
	Indent float64
	// Elif is set on Condition lines introduced by elif.
	Elif bool
}

var (
	conditionRe = regexp.MustCompile(`^(\s*)(if|elif)\s+([^:]*):`)
	elseRe      = regexp.MustCompile(`^(\s*)else\s*:`)
	valueRe     = regexp.MustCompile(`^(\s*)(\w+\s*=\s*[\w\s+\-.]+)$`)
)

// ParseLine classifies a single line.
func ParseLine(line string) Line {
	line = strings.TrimRight(line, "\r\n")

	if m := conditionRe.FindStringSubmatch(line); m != nil {
		return Line{
			Kind:   Condition,
			Text:   strings.TrimSpace(m[3]),
			Indent: indentLevel(m[1]),
			Elif:   m[2] == "elif",
		}
	}
	if m := elseRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: Else, Indent: indentLevel(m[1])}
	}
	if m := valueRe.FindStringSubmatch(line); m != nil {
		return Line{
			Kind:   Value,
			Text:   strings.TrimSpace(m[2]),
			Indent: indentLevel(m[1]),
		}
	}
	return Line{Kind: None}
}

func indentLevel(ws string) float64 {
	var width int
	for _, r := range ws {
		if r == '\t' {
			width += IndentUnit
		} else {
			width++
		}
	}
	return float64(width) / IndentUnit
}

// Block is a conditional text block flattened into parallel lists.
type Block struct {
	// Keywords holds one If per condition and one Else per else clause, in source order.
	Keywords []Keyword
	// Conditions holds one Condition line per If keyword.
	Conditions []Line
	// Values holds the Value lines in source order.
	Values []Line
}

// ParseLines flattens the lines of a conditional block.
//
// Besides proper else lines, any unrecognized line containing the substring
// "else" also contributes an Else keyword.
func ParseLines(lines []string) Block {
	var b Block
	for _, raw := range lines {
		line := ParseLine(raw)
		switch line.Kind {
		case Condition:
			if line.Elif {
				b.Keywords = append(b.Keywords, ElseKeyword)
			}
			b.Keywords = append(b.Keywords, If)
			b.Conditions = append(b.Conditions, line)
		case Else:
			b.Keywords = append(b.Keywords, ElseKeyword)
		case Value:
			b.Values = append(b.Values, line)
		case None:
			if strings.Contains(raw, "else") {
				b.Keywords = append(b.Keywords, ElseKeyword)
			}
		}
	}
	return b
}

// Parse splits text into lines and flattens them with ParseLines.
func Parse(text string) Block {
	return ParseLines(strings.Split(text, "\n"))
}

// Target returns the assigned name of a Value line.
func (l Line) Target() string {
	if l.Kind != Value {
		return ""
	}
	idx := strings.Index(l.Text, "=")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(l.Text[:idx])
}
