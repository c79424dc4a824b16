package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clts.cli")
	defer teardown()
	//
	data := []struct {
		line   string
		code   int
		option string
		arg    string
	}{
		{"quit", QUIT, "", ""},
		{"tːʰ kˡ", PARSE, "", "tːʰ kˡ"},
		{"name  voiceless alveolar plosive consonant", NAME, "", "voiceless alveolar plosive consonant"},
		{"translate:asjp ts a", TRANSLATE, "asjp", "ts a"},
		{"Classes:sca t a", CLASSES, "sca", "t a"},
		{"system", SYSTEM, "", ""},
	}
	for _, d := range data {
		cmd, err := parseCommand(d.line)
		require.NoError(t, err, d.line)
		assert.Equal(t, d.code, cmd.code, d.line)
		assert.Equal(t, d.option, cmd.option, d.line)
		assert.Equal(t, d.arg, cmd.arg, d.line)
	}
	for _, line := range []string{"translate ts", "name", "classes t a"} {
		_, err := parseCommand(line)
		assert.Error(t, err, line)
	}
}
