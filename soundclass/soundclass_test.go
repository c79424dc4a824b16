package soundclass

import (
	"errors"
	"testing"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/ts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openModel(t *testing.T, model string) *SoundClasses {
	bipa, err := ts.GlobalRegistry().System("bipa")
	require.NoError(t, err)
	sc, err := Open(nil, model, bipa)
	require.NoError(t, err)
	return sc
}

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.soundclass")
	defer teardown()
	//
	sca := openModel(t, "sca")
	data := []struct {
		sound, class string
	}{
		{"t", "T"},
		{"tʰ", "T"},
		{"tʼ", "T"},
		{"kʰː", "K"},
		{"aː", "A"},
		{"ao", "A"},
		{"tk", "T"},
		{"ᵑǀ", "K"},
		{"voiceless velar plosive consonant", "K"},
	}
	for _, d := range data {
		class, err := sca.ResolveString(d.sound)
		require.NoError(t, err, "sound %q", d.sound)
		assert.Equal(t, d.class, class, "class of %q", d.sound)
	}
}

func TestResolveFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.soundclass")
	defer teardown()
	//
	sca := openModel(t, "sca")
	for _, s := range []string{"X", "˧˩˧", "+"} {
		_, err := sca.ResolveString(s)
		assert.True(t, errors.Is(err, ErrNoSound), "sound %q", s)
		assert.Equal(t, core.EMISSING, core.Code(err))
	}
}

func TestClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.soundclass")
	defer teardown()
	//
	assert.Equal(t, []string{"T", Unresolved, "A"}, openModel(t, "sca").Classes("t X a"))
	assert.Equal(t, []string{"C", "V"}, openModel(t, "cv").Classes("tʰ a"))
	assert.Equal(t, []string{"c", "E"}, openModel(t, "asjp").Classes("ts a"))
	assert.Equal(t, []string{"K", "V"}, openModel(t, "dolgo").Classes("c ɛ"))
	assert.Equal(t, []string{"1", "3", "4", "5", "7", "T"}, openModel(t, "prosody").Classes("tʰ s n r a ˥"))
	assert.Equal(t, []string{"#F28E2B", "#FFFFFF", Unresolved}, openModel(t, "color").Classes("t a X"))
}

func TestUnknownModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.soundclass")
	defer teardown()
	//
	bipa, err := ts.GlobalRegistry().System("bipa")
	require.NoError(t, err)
	_, err = Open(nil, "klingon", bipa)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = Open(nil, "sca", nil)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Equal(t, []string{"asjp", "color", "cv", "dolgo", "prosody", "sca"}, Models())
}
