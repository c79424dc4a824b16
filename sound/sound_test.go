package sound

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.sound")
	defer teardown()
	//
	for _, c := range []Category{MarkerCategory, ConsonantCategory, VowelCategory,
		ToneCategory, ClickCategory, DiphthongCategory, ClusterCategory} {
		p, ok := ParseCategory(c.String())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, p)
	}
	_, ok := ParseCategory("unknownsound")
	assert.False(t, ok)
	_, ok = ParseCategory("plosive")
	assert.False(t, ok)
	assert.Equal(t, "unknownsound", Category(99).String())
	assert.True(t, ClusterCategory.IsComplex())
	assert.False(t, VowelCategory.IsComplex())
}

func TestSchemaWriteOrderIsSubsetOfSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.sound")
	defer teardown()
	//
	for _, c := range Featured {
		s := SchemaFor(c)
		require.NotNil(t, s, c.String())
		for _, f := range append(append([]string{}, s.Pre...), s.Post...) {
			assert.True(t, s.Has(f), "%s: %s", c, f)
		}
	}
	assert.Nil(t, SchemaFor(MarkerCategory))
	assert.Nil(t, SchemaFor(DiphthongCategory))
}

func TestFeatureSetName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.sound")
	defer teardown()
	//
	fs := NewFeatureSet(ConsonantCategory)
	require.True(t, fs.Valid())
	// insertion order must not matter, name order does
	require.NoError(t, fs.Set("manner", "plosive"))
	require.NoError(t, fs.Set("duration", "long"))
	require.NoError(t, fs.Set("place", "alveolar"))
	require.NoError(t, fs.Set("aspiration", "aspirated"))
	require.NoError(t, fs.Set("phonation", "voiceless"))
	assert.Equal(t, "aspirated long voiceless alveolar plosive consonant", fs.Name())
	assert.Equal(t, "alveolar", fs.Get("place"))
	assert.Equal(t, "", fs.Get("height"))
	assert.Error(t, fs.Set("height", "open"))
	//
	c := fs.Clone()
	require.NoError(t, c.Set("duration", ""))
	assert.Equal(t, "aspirated voiceless alveolar plosive consonant", c.Name())
	assert.Equal(t, "long", fs.Get("duration"), "clone must not share slots")
	assert.False(t, c.Equal(fs))
	assert.Equal(t, "{aspiration:aspirated,phonation:voiceless,place:alveolar,manner:plosive}", c.String())
}

func TestInvalidFeatureSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.sound")
	defer teardown()
	//
	fs := NewFeatureSet(MarkerCategory)
	assert.False(t, fs.Valid())
	assert.Equal(t, "", fs.Name())
	assert.Error(t, fs.Set("place", "velar"))
	_, err := NewSound(Sound{Features: fs})
	assert.Error(t, err)
}

func vowel(t *testing.T, g string, kv ...string) *Vowel {
	fs := NewFeatureSet(VowelCategory)
	for i := 0; i+1 < len(kv); i += 2 {
		require.NoError(t, fs.Set(kv[i], kv[i+1]))
	}
	sym, err := NewSound(Sound{Grapheme: g, Features: fs})
	require.NoError(t, err)
	return sym.(*Vowel)
}

func consonant(t *testing.T, g string, kv ...string) *Consonant {
	fs := NewFeatureSet(ConsonantCategory)
	for i := 0; i+1 < len(kv); i += 2 {
		require.NoError(t, fs.Set(kv[i], kv[i+1]))
	}
	sym, err := NewSound(Sound{Grapheme: g, Features: fs})
	require.NoError(t, err)
	return sym.(*Consonant)
}

func TestComplexSounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.sound")
	defer teardown()
	//
	a := vowel(t, "a", "roundedness", "unrounded", "height", "open", "centrality", "front")
	u := vowel(t, "u", "roundedness", "rounded", "height", "close", "centrality", "back")
	u.Stress = "primary-stress"
	d := NewDiphthong("au", a, u)
	assert.Equal(t, "au", d.String())
	assert.Equal(t, "from unrounded open front to rounded close back diphthong", d.Name())
	assert.Equal(t, "primary-stress", StressOf(d))
	assert.True(t, IsGenerated(d))
	//
	tt := consonant(t, "t", "phonation", "voiceless", "place", "alveolar", "manner", "plosive")
	k := consonant(t, "k", "phonation", "voiceless", "place", "velar", "manner", "plosive")
	c := NewCluster("tk", tt, k)
	assert.Equal(t, ClusterCategory, c.Category())
	assert.Equal(t, "from voiceless alveolar plosive to voiceless velar plosive cluster", c.Name())
	assert.True(t, ClusterManner(k.Manner()))
	assert.False(t, ClusterManner("fricative"))
}

func TestEqualAndClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.sound")
	defer teardown()
	//
	t1 := consonant(t, "tʰː", "aspiration", "aspirated", "duration", "long",
		"phonation", "voiceless", "place", "alveolar", "manner", "plosive")
	t2 := consonant(t, "tːʰ", "duration", "long", "aspiration", "aspirated",
		"phonation", "voiceless", "place", "alveolar", "manner", "plosive")
	assert.True(t, Equal(t1, t2))
	assert.False(t, Equal(t1, NewUnknown("x", "x")))
	assert.False(t, Equal(NewUnknown("x", "x"), NewUnknown("x", "x")))
	//
	c := Clone(t1).(*Consonant)
	c.Source = "changed"
	require.NoError(t, c.Features.Set("duration", ""))
	assert.Equal(t, "long", t1.Get("duration"))
	assert.Equal(t, "", t1.Source)
	//
	m := &Marker{Grapheme: "+"}
	assert.True(t, Equal(m, Clone(m)))
	assert.Equal(t, "+", m.Name())
	a, ok := Attributes(c)
	require.True(t, ok)
	assert.Same(t, &c.Sound, a)
	_, ok = Attributes(m)
	assert.False(t, ok)
}

func TestUnicodeInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.sound")
	defer teardown()
	//
	assert.Equal(t, "U+0074 U+02B0", Codepoints("tʰ"))
	assert.Equal(t, "LATIN SMALL LETTER T / MODIFIER LETTER SMALL H", UnicodeNames("tʰ"))
}
