package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitFrontMatter(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		wantHeader string
		wantBody   string
	}{
		{
			name:       "header and body",
			in:         "---\ntitle: A\n---\nbody",
			wantHeader: "title: A\n",
			wantBody:   "body",
		},
		{
			name:       "no delimiter at all",
			in:         "no header here",
			wantHeader: "",
			wantBody:   "no header here",
		},
		{
			name:       "empty input",
			in:         "",
			wantHeader: "",
			wantBody:   "",
		},
		{
			name:       "opening without closing keeps whole text",
			in:         "---\ntitle: only opening",
			wantHeader: "",
			wantBody:   "---\ntitle: only opening",
		},
		{
			name:       "trailing characters on delimiter lines ignored",
			in:         "--- junk\ntitle: T\n--- trailing\nrest",
			wantHeader: "title: T\n",
			wantBody:   "rest",
		},
		{
			name:       "closing marker without opening",
			in:         "title: B\n---\nbody",
			wantHeader: "title: B\n",
			wantBody:   "body",
		},
		{
			name:       "dashes mid line never match",
			in:         "text with --- inline\nmore",
			wantHeader: "",
			wantBody:   "text with --- inline\nmore",
		},
		{
			name:       "empty header empty body",
			in:         "---\n---\n",
			wantHeader: "",
			wantBody:   "",
		},
		{
			name:       "delimiter at end of input",
			in:         "---\nkey: v\n---",
			wantHeader: "key: v\n",
			wantBody:   "",
		},
		{
			name:       "four dashes open without close",
			in:         "----\nnot closed",
			wantHeader: "",
			wantBody:   "----\nnot closed",
		},
		{
			name:       "four dashes accepted as closing line",
			in:         "---\nt: v\n----\nbody",
			wantHeader: "t: v\n",
			wantBody:   "body",
		},
		{
			name:       "multiline header",
			in:         "---\ntitle: A\nsubtitle: B\n---\nfirst\nsecond\n",
			wantHeader: "title: A\nsubtitle: B\n",
			wantBody:   "first\nsecond\n",
		},
		{
			name:       "leading newline then delimiter",
			in:         "\n---\nbody",
			wantHeader: "\n",
			wantBody:   "body",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header, body := SplitFrontMatter([]byte(tc.in))
			require.Equal(t, tc.wantHeader, string(header))
			require.Equal(t, tc.wantBody, string(body))
		})
	}
}

func TestSplitFrontMatterOnlyFindsFirstClosing(t *testing.T) {
	header, body := SplitFrontMatter([]byte("---\na: 1\n---\nmiddle\n---\nend"))
	require.Equal(t, "a: 1\n", string(header))
	require.Equal(t, "middle\n---\nend", string(body))
}
