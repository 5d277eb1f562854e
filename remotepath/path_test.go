package remotepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single separator", "/", nil},
		{"only separators", "///", nil},
		{"simple", "foo/bar", []string{"foo", "bar"}},
		{"leading and trailing separators", "/foo/bar/", []string{"foo", "bar"}},
		{"whitespace segments", " a // b ", []string{"a", "b"}},
		{"dotdot passes through", "a/../b", []string{"a", "..", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input).Segments())
		})
	}
}

func TestNew(t *testing.T) {
	assert.Equal(t, []string{"foo", "bar"}, New("foo", "bar").Segments())
	assert.Equal(t, []string{"foo", "bar"}, New("  foo  ", "bar", "").Segments())
	assert.Equal(t, []string{"a", "b", "c"}, New("a/b", "c").Segments(), "segments containing separators are split")
	assert.True(t, New().IsEmpty())
	assert.True(t, New("").IsEmpty())
}

func TestSanitize(t *testing.T) {
	want := []string{"foo", "bar"}

	fromString, err := Sanitize("foo/bar")
	require.NoError(t, err)
	fromSlice, err := Sanitize([]string{"foo", "bar"})
	require.NoError(t, err)
	fromMessy, err := Sanitize([]string{"  foo  ", "bar", ""})
	require.NoError(t, err)

	assert.Equal(t, want, fromString.Segments())
	assert.Equal(t, want, fromSlice.Segments())
	assert.Equal(t, want, fromMessy.Segments())
}

func TestSanitizeIdempotent(t *testing.T) {
	once, err := Sanitize(" foo //bar/ ")
	require.NoError(t, err)
	twice, err := Sanitize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestSanitizeNumericCoercion(t *testing.T) {
	p, err := Sanitize([]any{"assets", 2024, int64(7), 3.5})
	require.NoError(t, err)
	assert.Equal(t, []string{"assets", "2024", "7", "3.5"}, p.Segments())
}

func TestSanitizeRejectsUnsupportedShapes(t *testing.T) {
	_, err := Sanitize(42)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Sanitize(struct{}{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Sanitize([]any{"ok", true})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRootCollapsing(t *testing.T) {
	for _, input := range []any{"", "/", "///", []string{}, []string{""}} {
		p, err := Sanitize(input)
		require.NoError(t, err)
		assert.True(t, p.IsEmpty(), "input %#v should collapse to root", input)
		assert.Equal(t, "", p.String())
	}
}

func TestAppend(t *testing.T) {
	base := Parse("a")
	got := base.Append("b/c")
	assert.Equal(t, []string{"a", "b", "c"}, got.Segments())
	assert.Equal(t, []string{"a"}, base.Segments(), "append must not modify the receiver")

	assert.Equal(t, "a/b", Parse("a").Append("", " b ").String())
	assert.Equal(t, "x", Parse("").Append("x").String())
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a/b/c/d", Parse("a/b").Join(Parse("c/d")).String())
	assert.Equal(t, "a/b", Parse("a/b").Join(Path{}).String())
	assert.Equal(t, "c", Path{}.Join(Parse("c")).String())
}

func TestSegmentsReturnsCopy(t *testing.T) {
	p := Parse("a/b")
	segs := p.Segments()
	segs[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, p.Segments())
}

func TestString(t *testing.T) {
	assert.Equal(t, "foo/bar", Parse("/foo/bar/").String())
	assert.Equal(t, "", Parse("").String())
}
