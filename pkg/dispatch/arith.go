// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// An operand is a number, optionally negative and comma grouped, wrapped in
// any number of parentheses. Operators must be surrounded by blanks so dates
// and ranges such as 2024-01-05 are left alone.
const operand = `\(*-?\d+(?:,\d{3})*(?:\.\d+)?\)*`

// The leading group keeps identifiers such as v2 or 1.2.3 out of a match.
var arithPattern = regexp.MustCompile(`(^|[^\w.])(` + operand + `(?:[ \t]+[-+*/][ \t]+` + operand + `)+)`)

var errSyntax = errors.New("not an arithmetic expression")

// evaluateArithmetic replaces arithmetic literals with their value. Anything
// the evaluator rejects is kept verbatim.
func evaluateArithmetic(s string) string {
	var b strings.Builder

	last := 0
	for _, m := range arithPattern.FindAllStringSubmatchIndex(s, -1) {
		start, end := m[4], m[5]

		if followedByWord(s[end:]) {
			continue
		}

		v, err := evaluate(s[start:end])
		if err != nil {
			continue
		}

		b.WriteString(s[last:start])
		b.WriteString(formatNumber(v))
		last = end
	}

	if last == 0 {
		return s
	}

	b.WriteString(s[last:])

	return b.String()
}

// followedByWord reports whether rest starts, after blanks, with a word.
// "10 - 15 new orders" and "3 / 4 weeks" are ranges and fractions of a
// quantity, not sums.
func followedByWord(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	r, _ := utf8.DecodeRuneInString(rest)

	return unicode.IsLetter(r)
}

// evaluate computes an expression made of numeric literals, parentheses and
// the four basic operators, nothing else.
func evaluate(expr string) (float64, error) {
	p := &parser{input: strings.ReplaceAll(expr, ",", "")}

	v, err := p.expression()
	if err != nil {
		return 0, err
	}

	p.skipBlanks()
	if p.pos != len(p.input) {
		return 0, errSyntax
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errSyntax
	}

	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipBlanks() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipBlanks()
	if p.pos >= len(p.input) {
		return 0
	}

	return p.input[p.pos]
}

// expression = term { ("+" | "-") term }
func (p *parser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}

	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return v, nil
		}
		p.pos++

		rhs, err := p.term()
		if err != nil {
			return 0, err
		}

		if op == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

// term = factor { ("*" | "/") factor }
func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}

	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return v, nil
		}
		p.pos++

		rhs, err := p.factor()
		if err != nil {
			return 0, err
		}

		if op == '*' {
			v *= rhs
			continue
		}

		if rhs == 0 {
			return 0, errSyntax
		}
		v /= rhs
	}
}

// factor = "-" factor | "(" expression ")" | number
func (p *parser) factor() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.factor()
		return -v, err
	case '(':
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}

		if p.peek() != ')' {
			return 0, errSyntax
		}
		p.pos++

		return v, nil
	}

	return p.number()
}

func (p *parser) number() (float64, error) {
	p.skipBlanks()

	start := p.pos
	for p.pos < len(p.input) && (p.input[p.pos] >= '0' && p.input[p.pos] <= '9' || p.input[p.pos] == '.') {
		p.pos++
	}

	if start == p.pos {
		return 0, errSyntax
	}

	return strconv.ParseFloat(p.input[start:p.pos], 64)
}

// formatNumber prints v with at most two decimals and no trailing zeros.
func formatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		// drops the sign of negative zero
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
