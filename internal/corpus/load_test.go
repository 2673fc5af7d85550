package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const freqSample = `1 Asaniu	[{KUR}a-sa-ni-u₂]
1 Ašarmu	[{iri}a-šar-mu-um{ki}]
11 Asdudu	[{URU}as-du-di, {KUR}as-du-di, {URU}aš₂-du-du]
`

func TestParseFreqFormat(t *testing.T) {
	store := NewStore()
	err := Parse(store, strings.NewReader(freqSample), FormatFreq)
	require.NoError(t, err)

	require.Equal(t, 3, store.Len())
	assert.Equal(t, []string{"Asaniu", "Ašarmu", "Asdudu"}, store.Forms())

	rec, ok := store.Get("Asdudu")
	require.True(t, ok)
	assert.Equal(t, 11, rec.Frequency)
	assert.Equal(t, []string{"{URU}as-du-di", "{KUR}as-du-di", "{URU}aš₂-du-du"}, rec.Spellings)

	rec, ok = store.Get("Asaniu")
	require.True(t, ok)
	assert.Equal(t, 1, rec.Frequency)
	assert.Equal(t, []string{"{KUR}a-sa-ni-u₂"}, rec.Spellings)
}

func TestParseFreqFormatLeadingWhitespace(t *testing.T) {
	// Real exports pad the frequency column with spaces.
	store := NewStore()
	err := Parse(store, strings.NewReader("      7 Barsip\t[bar-sip, {URU}bar-sip]\n"), FormatFreq)
	require.NoError(t, err)

	rec, ok := store.Get("Barsip")
	require.True(t, ok)
	assert.Equal(t, 7, rec.Frequency)
	assert.Equal(t, []string{"bar-sip", "{URU}bar-sip"}, rec.Spellings)
}

func TestParseFreqFormatThreeFields(t *testing.T) {
	// Some exports carry an extra middle column; the spelling list is
	// always the last field.
	store := NewStore()
	err := Parse(store, strings.NewReader("2 Babil\tURBAN\t[ba-bil₂, ba-bil]\n"), FormatFreq)
	require.NoError(t, err)

	rec, ok := store.Get("Babil")
	require.True(t, ok)
	assert.Equal(t, []string{"ba-bil₂", "ba-bil"}, rec.Spellings)
}

func TestParsePlainFormat(t *testing.T) {
	store := NewStore()
	err := Parse(store, strings.NewReader("Babil\nBarsip\n\nBabilu\n"), FormatPlain)
	require.NoError(t, err)

	assert.Equal(t, []string{"Babil", "Barsip", "Babilu"}, store.Forms())
	rec, _ := store.Get("Babil")
	assert.Equal(t, 0, rec.Frequency)
	assert.Empty(t, rec.Spellings)
}

func TestParseMalformedMissingTab(t *testing.T) {
	store := NewStore()
	err := Parse(store, strings.NewReader("1 Asaniu [a-sa-ni-u]\n"), FormatFreq)

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Line)
}

func TestParseMalformedNoFrequency(t *testing.T) {
	store := NewStore()
	err := Parse(store, strings.NewReader("1 Ok\t[a]\nAsaniu\t[a-sa-ni-u]\n"), FormatFreq)

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
	assert.Contains(t, malformed.Error(), "no leading digits")
}

func TestParseDropsInvalidUTF8(t *testing.T) {
	store := NewStore()
	input := "3 Bab\xffil\t[ba-bil]\n"
	err := Parse(store, strings.NewReader(input), FormatFreq)
	require.NoError(t, err)

	_, ok := store.Get("Babil")
	assert.True(t, ok, "invalid byte should be dropped, not replaced")
}

func TestDuplicateSurfaceFormKeepsPosition(t *testing.T) {
	store := NewStore()
	err := Parse(store, strings.NewReader("1 Babil\t[a]\n2 Barsip\t[b]\n5 Babil\t[c]\n"), FormatFreq)
	require.NoError(t, err)

	assert.Equal(t, []string{"Babil", "Barsip"}, store.Forms())
	rec, _ := store.Get("Babil")
	assert.Equal(t, 5, rec.Frequency, "later record wins")
	assert.Equal(t, []string{"c"}, rec.Spellings)
}

func TestLoadFileReportsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.tsv")
	require.NoError(t, os.WriteFile(path, []byte("no tab here\n"), 0o644))

	_, err := LoadFile(path, FormatFreq)
	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, path, malformed.File)
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.tsv"), []byte("1 Barsip\t[bar-sip]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.tsv"), []byte("1 Babil\t[ba-bil]\n"), 0o644))

	store, err := LoadGlob(filepath.Join(dir, "*.tsv"), FormatFreq)
	require.NoError(t, err)

	// Lexical path order keeps the store order reproducible.
	assert.Equal(t, []string{"Babil", "Barsip"}, store.Forms())
}

func TestLoadGlobNoMatches(t *testing.T) {
	_, err := LoadGlob(filepath.Join(t.TempDir(), "*.tsv"), FormatFreq)
	require.Error(t, err)
}

func TestFingerprintStable(t *testing.T) {
	a := NewStore()
	require.NoError(t, Parse(a, strings.NewReader(freqSample), FormatFreq))
	b := NewStore()
	require.NoError(t, Parse(b, strings.NewReader(freqSample), FormatFreq))

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c := NewStore()
	require.NoError(t, Parse(c, strings.NewReader(freqSample+"4 Babil\t[ba-bil]\n"), FormatFreq))
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
