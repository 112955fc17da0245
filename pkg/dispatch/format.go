// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lighthouse-hq/lighthouse/internal/analytics"
)

var (
	mentionPattern  = regexp.MustCompile(`<@[^>]+>`)
	commentPattern  = regexp.MustCompile(`<!--|-->`)
	tagPattern      = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(?:\s[^>]*)?/?>`)
	currencyPattern = regexp.MustCompile(`\$\s?(-?\d+(?:,\d{3})*(?:\.\d+)?)`)
	newlinesPattern = regexp.MustCompile(`\n{3,}`)
)

// stripMention removes the first user mention, the bot addressing itself.
func stripMention(text string) string {
	loc := mentionPattern.FindStringIndex(text)
	if loc == nil {
		return strings.TrimSpace(text)
	}

	return strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
}

// normalize makes provider text fit for a chat message. The steps run in a
// fixed order and the result only depends on the input.
func normalize(s string) string {
	s = commentPattern.ReplaceAllString(s, "")
	s = tagPattern.ReplaceAllString(s, "")
	s = evaluateArithmetic(s)
	s = formatCurrency(s)
	s = newlinesPattern.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// formatCurrency rewrites dollar amounts as $1,234.50.
func formatCurrency(s string) string {
	return currencyPattern.ReplaceAllStringFunc(s, func(m string) string {
		raw := currencyPattern.FindStringSubmatch(m)[1]

		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			return m
		}

		sign := ""
		if v < 0 {
			sign = "-"
			v = -v
		}

		return sign + "$" + groupThousands(strconv.FormatFloat(v, 'f', 2, 64))
	})
}

func groupThousands(s string) string {
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return b.String() + "." + frac
}

// compose builds the reply text: the conclusion, then the remaining answer
// fragments under a debug heading.
func compose(resp *analytics.QueryResponse) string {
	text := normalize(resp.AssistantConclusion)

	details := make([]string, 0, len(resp.Responses))
	for _, r := range resp.Responses {
		if d := normalize(r.Assistant); d != "" {
			details = append(details, d)
		}
	}

	if len(details) == 0 {
		return text
	}

	return text + debugHeading + strings.Join(details, "\n\n")
}
