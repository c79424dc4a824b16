package inventories

import (
	"testing"
	"testing/fstest"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/sound"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateFallsBackToBundled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.inventory")
	defer teardown()
	//
	for _, conf := range []schuko.Configuration{
		nil,
		testconfig.Conf{},
		testconfig.Conf{DataKey: "/does/not/exist"},
	} {
		fsys := Locate(conf)
		tables, err := ResolveTables(fsys, "bipa").Tables()
		require.NoError(t, err)
		assert.NotEmpty(t, tables.Sounds[sound.ConsonantCategory])
	}
}

func TestLocateConfiguredFolder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.inventory")
	defer teardown()
	//
	dir := t.TempDir()
	fsys := Locate(testconfig.Conf{DataKey: dir})
	_, err := ResolveTables(fsys, "bipa").Tables()
	assert.Error(t, err, "empty folder must not contain bipa")
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestResolveTablesPromise(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.inventory")
	defer teardown()
	//
	fsys := fstest.MapFS{
		"x/vowels.tsv": {Data: []byte("GRAPHEME\tHEIGHT\na\topen\n")},
	}
	promise := ResolveTables(fsys, "x")
	tables, err := promise.Tables()
	require.NoError(t, err)
	again, err := promise.Tables()
	require.NoError(t, err)
	assert.Same(t, tables, again, "promise must deliver the same result twice")
	//
	_, err = ResolveTables(fsys, "y").Tables()
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = ReadTable(fsys, "soundclasses/lingpy.tsv")
	assert.Equal(t, core.EMISSING, core.Code(err))
}
