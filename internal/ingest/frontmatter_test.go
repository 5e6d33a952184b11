package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeFrontMatterEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t\n"} {
		fm, err := DecodeFrontMatter([]byte(in))
		require.NoError(t, err, "input %q", in)
		require.Equal(t, "", fm.Title)
		require.Equal(t, "", fm.Subtitle)
	}
}

func TestDecodeFrontMatterFields(t *testing.T) {
	fm, err := DecodeFrontMatter([]byte("title: A Post\nsubtitle: about things\n"))
	require.NoError(t, err)
	require.Equal(t, "A Post", fm.Title)
	require.Equal(t, "about things", fm.Subtitle)
}

func TestDecodeFrontMatterNullBecomesEmpty(t *testing.T) {
	fm, err := DecodeFrontMatter([]byte("title:\nsubtitle: ~\n"))
	require.NoError(t, err)
	require.Equal(t, "", fm.Title)
	require.Equal(t, "", fm.Subtitle)
}

func TestDecodeFrontMatterUnknownKeysIgnored(t *testing.T) {
	fm, err := DecodeFrontMatter([]byte("title: A\ndraft: true\ntags: [x, y]\n"))
	require.NoError(t, err)
	require.Equal(t, "A", fm.Title)
	require.Equal(t, "", fm.Subtitle)
}

func TestDecodeFrontMatterInvalid(t *testing.T) {
	for _, in := range []string{
		"title: [unclosed\n",
		"just some words",
		"- a\n- b\n",
		"title: A\n  bad:\nindent\n",
	} {
		_, err := DecodeFrontMatter([]byte(in))
		require.Error(t, err, "input %q", in)
		require.ErrorIs(t, err, ErrBadFrontMatter, "input %q", in)
	}
}
