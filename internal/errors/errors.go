// Package errors formats tokenizer and parser diagnostics with source
// context, line information, and a caret pointing at the line in
// question. Runtime errors are not routed through here: per the
// output contract they print as a single "runtime>: <message>" line
// with no surrounding context.
package errors

import (
	"fmt"
	"strings"
)

// Diagnostic is a single tokenizer or parser failure tied to a source
// line. The parser and tokenizer fail fast, so a run ever produces at
// most one of these.
type Diagnostic struct {
	Message string
	Source  string
	File    string
	Line    int
}

// NewDiagnostic builds a Diagnostic from a line number and message,
// the two facts every lexer.Error and parser.Error already carries.
func NewDiagnostic(line int, message, source, file string) *Diagnostic {
	return &Diagnostic{Line: line, Message: message, Source: source, File: file}
}

func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic with its offending source line and a
// caret beneath it. If color is true, ANSI escapes highlight the
// caret and message for terminal output.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d\n", d.File, d.Line)
	} else {
		fmt.Fprintf(&sb, "Error at line %d\n", d.Line)
	}

	if line := d.sourceLine(d.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// FormatWithContext is Format plus contextLines of surrounding source
// on either side, the offending line highlighted.
func (d *Diagnostic) FormatWithContext(contextLines int, color bool) string {
	lines := d.sourceContext(d.Line, contextLines, contextLines)
	if len(lines) == 0 {
		return d.Format(color)
	}

	var sb strings.Builder
	if d.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d\n", d.File, d.Line)
	} else {
		fmt.Fprintf(&sb, "Error at line %d\n", d.Line)
	}

	startLine := d.Line - contextLines
	if startLine < 1 {
		startLine = 1
	}

	for i, line := range lines {
		currentLine := startLine + i
		lineNumStr := fmt.Sprintf("%4d | ", currentLine)

		if currentLine == d.Line {
			if color {
				sb.WriteString("\033[1m")
			}
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^")
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
		} else {
			if color {
				sb.WriteString("\033[2m")
			}
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func (d *Diagnostic) sourceContext(lineNum, before, after int) []string {
	if d.Source == "" {
		return nil
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return nil
	}
	start := lineNum - before
	if start < 1 {
		start = 1
	}
	end := lineNum + after
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start-1 : end]
}
