package gxserialprobe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	for _, n := range []int{0, 1, 36, 2000} {
		data := Generate(n)
		require.Len(t, data, n)
		for _, c := range data {
			require.True(t, bytes.IndexByte([]byte(Alphabet), c) >= 0, "unexpected %q", c)
		}
	}
	require.Empty(t, Generate(-1))
}

func TestTransformKeepsLength(t *testing.T) {
	tx := Generate(2000)
	for _, tr := range []Transform{TransformUpper, TransformLower, TransformIdentity} {
		require.Len(t, Expected(tx, tr), len(tx), tr.String())
	}
}

func TestTransformApply(t *testing.T) {
	in := []byte("abcXYZ019-")
	require.Equal(t, []byte("ABCXYZ019-"), TransformUpper.Apply(in))
	require.Equal(t, []byte("abcxyz019-"), TransformLower.Apply(in))
	require.Equal(t, in, TransformIdentity.Apply(in))
	// The input is left alone.
	require.Equal(t, []byte("abcXYZ019-"), in)
}

func TestParseTransform(t *testing.T) {
	for _, tr := range []Transform{TransformUpper, TransformLower, TransformIdentity} {
		got, err := ParseTransform(tr.String())
		require.NoError(t, err)
		require.Equal(t, tr, got)
	}
	got, err := ParseTransform(" UPPER ")
	require.NoError(t, err)
	require.Equal(t, TransformUpper, got)

	_, err = ParseTransform("rot13")
	require.Error(t, err)
	require.Equal(t, "Transform(9)", Transform(9).String())
}
