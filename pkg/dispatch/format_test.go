// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"strings"
	"testing"

	"github.com/lighthouse-hq/lighthouse/internal/analytics"
)

func TestStripMention(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"<@UBOT> what was revenue?", "what was revenue?"},
		{"  <@UBOT>  ", ""},
		{"hey <@UBOT> and <@U2>", "hey  and <@U2>"},
		{"no mention", "no mention"},
	}

	for _, tt := range tests {
		if got := stripMention(tt.in); got != tt.expected {
			t.Errorf("stripMention(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "markup tags are removed",
			in:       "<b>Revenue</b> grew<br/> fast",
			expected: "Revenue grew fast",
		},
		{
			name:     "comment markers are removed",
			in:       "<!-- note -->done",
			expected: "note done",
		},
		{
			name:     "chat links survive",
			in:       "see <https://example.com|the report>",
			expected: "see <https://example.com|the report>",
		},
		{
			name:     "blank lines collapse",
			in:       "a\n\n\n\nb\n\nc",
			expected: "a\n\nb\n\nc",
		},
		{
			name:     "arithmetic is evaluated",
			in:       "ROAS is 300 / 120, up from last week",
			expected: "ROAS is 2.5, up from last week",
		},
		{
			name:     "currency gets two decimals and grouping",
			in:       "Spend was $1234.5 and $ 20",
			expected: "Spend was $1,234.50 and $20.00",
		},
		{
			name:     "currency after arithmetic",
			in:       "Total $1,200 + 300",
			expected: "Total $1,500.00",
		},
		{
			name:     "negative amounts",
			in:       "Refunds $-45.1",
			expected: "Refunds -$45.10",
		},
		{
			name:     "ranges before a word stay prose",
			in:       "Expect 10 - 15 new orders, total 10 + 15",
			expected: "Expect 10 - 15 new orders, total 25",
		},
		{
			name:     "dates are not arithmetic",
			in:       "on 2024-01-05",
			expected: "on 2024-01-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.in); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
		wantErr  bool
	}{
		{expr: "1 + 2 * 3", expected: "7"},
		{expr: "(1 + 2) * 3", expected: "9"},
		{expr: "10 / 4", expected: "2.5"},
		{expr: "2 / 3", expected: "0.67"},
		{expr: "5 - -3", expected: "8"},
		{expr: "1,000 - 1", expected: "999"},
		{expr: "0.1 + 0.2", expected: "0.3"},
		{expr: "1 / 0", wantErr: true},
		{expr: "(1 + 2", wantErr: true},
		{expr: "1 + 2)", wantErr: true},
		{expr: "1 + x", wantErr: true},
		{expr: "1 ^ 2", wantErr: true},
	}

	for _, tt := range tests {
		v, err := evaluate(tt.expr)

		if tt.wantErr {
			if err == nil {
				t.Errorf("evaluate(%q) expected error, got %v", tt.expr, v)
			}
			continue
		}

		if err != nil {
			t.Errorf("evaluate(%q) unexpected error: %v", tt.expr, err)
			continue
		}

		if got := formatNumber(v); got != tt.expected {
			t.Errorf("evaluate(%q) = %s, expected %s", tt.expr, got, tt.expected)
		}
	}
}

func TestEvaluateArithmeticLeavesRejectedTextAlone(t *testing.T) {
	tests := []string{
		"divide 1 / 0 please",
		"version v2 + 3",
		"(see 3 + 4)",
		"Expect 10 - 15 new orders per day",
		"from 3 / 4 weeks ago",
		"between 2 - 3\tdays",
	}

	for _, in := range tests {
		if got := evaluateArithmetic(in); got != in {
			t.Errorf("evaluateArithmetic(%q) = %q, expected unchanged", in, got)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		resp     *analytics.QueryResponse
		expected string
	}{
		{
			name:     "conclusion only",
			resp:     &analytics.QueryResponse{AssistantConclusion: "Spend was $10"},
			expected: "Spend was $10.00",
		},
		{
			name: "details go under the debug heading",
			resp: &analytics.QueryResponse{
				AssistantConclusion: "Done",
				Responses: []analytics.QueryFragment{
					{Assistant: "step <i>one</i>"},
					{Assistant: ""},
					{Assistant: "step two"},
				},
			},
			expected: "Done\n\n*Debug:*\nstep one\n\nstep two",
		},
		{
			name:     "nothing to say",
			resp:     &analytics.QueryResponse{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compose(tt.resp); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestChunk(t *testing.T) {
	for _, size := range []int{1, 7, 100, MaxChunkLength} {
		for _, length := range []int{0, 1, size - 1, size, size + 1, 3*size + 2} {
			in := strings.Repeat("é", length)
			chunks := chunk(in, size)

			expected := (length + size - 1) / size
			if len(chunks) != expected {
				t.Errorf("size %d length %d: expected %d chunks, got %d", size, length, expected, len(chunks))
			}

			for i, c := range chunks {
				if n := len([]rune(c)); n > size || n == 0 {
					t.Errorf("size %d length %d: chunk %d has %d runes", size, length, i, n)
				}
			}

			if joined := strings.Join(chunks, ""); joined != in {
				t.Errorf("size %d length %d: chunks do not reproduce the input", size, length)
			}
		}
	}
}
