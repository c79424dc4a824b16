package transdata

import (
	"errors"
	"testing"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/ts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.transdata")
	defer teardown()
	//
	bipa, err := ts.GlobalRegistry().System("bipa")
	require.NoError(t, err)
	phoible, err := Open(nil, "phoible", bipa)
	require.NoError(t, err)
	assert.Equal(t, "phoible", phoible.ID())
	data := []struct {
		sound, graphemes string
	}{
		{"t", norm.NFD.String("t//t̠")},
		{"tʰ", "tʰ"},
		{"th", "tʰ"},
		{"ǝ", "ə"},
		{"voiced velar plosive consonant", "ɡ"},
	}
	for _, d := range data {
		g, err := phoible.ResolveString(d.sound)
		require.NoError(t, err, "sound %q", d.sound)
		assert.Equal(t, d.graphemes, g, "graphemes of %q", d.sound)
	}
	ref, ok := phoible.Reference("voiceless alveolar plosive consonant")
	assert.True(t, ok)
	assert.Equal(t, "t", ref)
	assert.Len(t, phoible.Graphemes("voiceless alveolar plosive consonant"), 2)
}

func TestResolveFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.transdata")
	defer teardown()
	//
	bipa, err := ts.GlobalRegistry().System("bipa")
	require.NoError(t, err)
	phoible, err := Open(nil, "phoible", bipa)
	require.NoError(t, err)
	for _, s := range []string{"kˡ", "X", "tʰː"} {
		_, err := phoible.ResolveString(s)
		assert.True(t, errors.Is(err, ErrNoSound), "sound %q", s)
	}
	_, err = Open(nil, "nonexistent", bipa)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
