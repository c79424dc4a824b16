package inventory

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/sound"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestReadSounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.inventory")
	defer teardown()
	//
	table := "GRAPHEME\tPHONATION\tPLACE\tMANNER\tEXTRA\tALIAS\tNOTE\n" +
		"t\tvoiceless\talveolar\tplosive\t\t\t\n" +
		"\n" +
		"th\tvoiceless\talveolar\tplosive\taspiration:aspirated\t+\tASCII\n"
	rows, err := ReadSounds(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "t", rows[0].Grapheme)
	assert.False(t, rows[0].Alias)
	assert.Equal(t, "plosive", rows[0].Get("manner"))
	assert.Equal(t, "aspirated", rows[1].Get("aspiration"))
	assert.True(t, rows[1].Alias)
	assert.Equal(t, "ASCII", rows[1].Note)
	assert.Equal(t, 4, rows[1].Line)
}

func TestReadSoundsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.inventory")
	defer teardown()
	//
	data := []string{
		"",                                  // no header
		"PLACE\tMANNER\nvelar\tplosive\n",    // no grapheme column
		"GRAPHEME\tEXTRA\nk\tplace\n",        // malformed extra
		"GRAPHEME\tPLACE\n\tvelar\n",         // empty grapheme
	}
	for i, table := range data {
		_, err := ReadSounds(strings.NewReader(table))
		assert.Error(t, err, "case %d", i)
		assert.Equal(t, core.EINVALID, core.Code(err), "case %d", i)
	}
}

func TestReadDiacriticsNormalizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.inventory")
	defer teardown()
	//
	table := "TYPE\tGRAPHEME\tFEATURE\tVALUE\tALIAS\n" +
		"vowel\t◌\u0303\tnasalization\tnasalized\t\n" +
		"consonant\t◌ʰ\taspiration\taspirated\t+\n"
	dias, err := ReadDiacritics(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, dias, 2)
	assert.Equal(t, sound.VowelCategory, dias[0].Type)
	assert.Equal(t, norm.NFD.String("◌̃"), dias[0].Grapheme)
	assert.True(t, dias[1].Alias)
	//
	_, err = ReadDiacritics(strings.NewReader("TYPE\tGRAPHEME\tFEATURE\tVALUE\nfoo\t◌x\ta\tb\n"))
	assert.Error(t, err)
	_, err = ReadDiacritics(strings.NewReader("TYPE\tGRAPHEME\tFEATURE\tVALUE\nvowel\tx\ta\tb\n"))
	assert.Error(t, err, "diacritic without placeholder")
}

func TestLoadFromMapFS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.inventory")
	defer teardown()
	//
	fsys := fstest.MapFS{
		"mini/vowels.tsv":    {Data: []byte("GRAPHEME\tROUNDEDNESS\tHEIGHT\tCENTRALITY\na\tunrounded\topen\tfront\n")},
		"mini/normalize.tsv": {Data: []byte("SOURCE\tTARGET\n:\tː\n")},
		"_private/vowels.tsv": {Data: []byte("GRAPHEME\n")},
		"notasystem/x.txt":   {Data: []byte("x")},
	}
	tables, err := Load(fsys, "mini")
	require.NoError(t, err)
	assert.Equal(t, "mini", tables.ID)
	assert.Len(t, tables.Sounds[sound.VowelCategory], 1)
	assert.Empty(t, tables.Sounds[sound.ConsonantCategory])
	assert.Equal(t, []Normalization{{":", "ː"}}, tables.Normalize)
	//
	_, err = Load(fsys, "notasystem")
	assert.Equal(t, core.EMISSING, core.Code(err))
	ids, err := Systems(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"mini"}, ids)
}

func TestBundledSystems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.inventory")
	defer teardown()
	//
	ids, err := Systems(Bundled())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"asjp", "bipa", "gld"}, ids)
	for _, id := range ids {
		tables, err := Load(Bundled(), id)
		require.NoError(t, err, id)
		assert.NotEmpty(t, tables.Sounds[sound.ConsonantCategory], id)
		assert.NotEmpty(t, tables.Sounds[sound.VowelCategory], id)
	}
	recs, err := ReadRecords(Bundled(), "soundclasses/lingpy.tsv")
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "p", recs[0]["BIPA"])
	_, err = ReadRecords(Bundled(), "soundclasses/none.tsv")
	assert.Equal(t, core.EMISSING, core.Code(err))
}
