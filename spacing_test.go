package cjkwrap

import "testing"

func TestResolveSpacing(t *testing.T) {
	cases := []struct {
		name          string
		specs         []string
		left, right   int
		lastPos       int
		before, after bool
		want          string
	}{
		{
			name:  "ideographs on both sides",
			specs: []string{"I:你好 ", "L: world ", "I: 你好"},
			left:  1, right: 2, lastPos: 0,
			before: true, after: true,
			want: "I:你好 L:world I:你好",
		},
		{
			name:  "no ideograph seen before",
			specs: []string{"L:world", "I:你好"},
			left:  0, right: 1, lastPos: -1,
			before: false, after: true,
			want: "L:world I:你好",
		},
		{
			name:  "punctuation before",
			specs: []string{"I:你好，", "L:world"},
			left:  1, right: 2, lastPos: 0,
			before: false, after: false,
			want: "I:你好， L:world",
		},
		{
			name:  "punctuation after",
			specs: []string{"I:中", "L:a ", "strong-", "I:。"},
			left:  1, right: 2, lastPos: 0,
			before: true, after: false,
			want: "I:中 L:a strong- I:。",
		},
		{
			name:  "hard break before window",
			specs: []string{"I:你好", "br", "L:world"},
			left:  2, right: 3, lastPos: 0,
			before: false, after: false,
			want: "I:你好 br L:world",
		},
		{
			name:  "markup between ideograph and window",
			specs: []string{"I:中 ", "em+", "L: a", "em-", "I:文"},
			left:  2, right: 3, lastPos: 0,
			before: true, after: true,
			want: "I:中 em+ L:a em- I:文",
		},
		{
			name:  "next text is Latin",
			specs: []string{"I:中", "L:a", "em+", "L:b"},
			left:  1, right: 2, lastPos: 0,
			before: true, after: false,
			want: "I:中 L:a em+ L:b",
		},
		{
			name:  "empty neighbour is not punctuation",
			specs: []string{"I:", "L:a"},
			left:  1, right: 2, lastPos: 0,
			before: true, after: false,
			want: "I: L:a",
		},
		{
			name:  "unclassified neighbours are ignored",
			specs: []string{"T:中", "L:a", "T:文"},
			left:  1, right: 2, lastPos: 0,
			before: false, after: false,
			want: "T:中 L:a T:文",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := seq(t, tc.specs...)
			before, after := resolveSpacing(tokens, tc.left, tc.right, tc.lastPos)
			if before != tc.before || after != tc.after {
				t.Fatalf("before/after = %v/%v, want %v/%v", before, after, tc.before, tc.after)
			}
			if got := shape(tokens); got != tc.want {
				t.Fatalf("tokens = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsCJKPunctuation(t *testing.T) {
	for _, r := range "《》「」『』（）”“、。，？！；：" {
		if !isCJKPunctuation(r) {
			t.Fatalf("expected %q to be CJK punctuation", r)
		}
	}
	for _, r := range "中a,.!?()" {
		if isCJKPunctuation(r) {
			t.Fatalf("did not expect %q to be CJK punctuation", r)
		}
	}
}
