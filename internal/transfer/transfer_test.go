package transfer

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryoma-abe/site-launcher/internal/registry"
	"github.com/ryoma-abe/site-launcher/internal/site"
)

func sitesFixture() []site.Site {
	return []site.Site{
		{Name: "Google", URL: "https://www.google.com", Key: "G"},
		{Name: "Example", URL: "https://example.com", Key: "E"},
	}
}

func TestExport_DocumentShape(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	out, err := Export(sitesFixture(), now)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, "2026-03-14T09:26:53Z", doc.ExportedAt)
	assert.Equal(t, sitesFixture(), doc.Sites)

	assert.True(t, strings.HasSuffix(string(out), "\n"), "export ends with a newline")
	assert.Contains(t, string(out), "\n  \"version\": 1", "export is pretty-printed")
}

func TestExport_TimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, loc)

	out, err := Export(nil, now)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "2026-03-14T09:00:00Z", doc.ExportedAt)
}

func TestImport_RoundTrip(t *testing.T) {
	out, err := Export(sitesFixture(), time.Now())
	require.NoError(t, err)

	imported, err := Import(out)
	require.NoError(t, err)
	assert.Equal(t, sitesFixture(), imported, "import of an export reproduces order and values")
}

func TestImport_BareArray(t *testing.T) {
	imported, err := Import([]byte(`[{"name":"Example","url":"example.com","key":"e"}]`))
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "https://example.com", imported[0].URL, "imported entries are sanitized")
	assert.Equal(t, "E", imported[0].Key)
}

func TestImport_SanitizesAndDedupes(t *testing.T) {
	text := `[
		{"name":"First","url":"first.example","key":"a"},
		{"name":"Shadowed","url":"second.example","key":"A"},
		{"name":"","url":"broken.example","key":"b"},
		{"name":"Mixed","url":"mixed.example","key":"c"},
		42
	]`
	imported, err := Import([]byte(text))
	require.NoError(t, err, "junk entries are dropped, not fatal")
	require.Len(t, imported, 2)
	assert.Equal(t, "First", imported[0].Name, "first occurrence of a key wins")
	assert.Equal(t, "Mixed", imported[1].Name)
}

func TestImport_ParseError(t *testing.T) {
	for _, text := range []string{"{not json", `"just a string"`, "42", `{"foo": 1}`} {
		_, err := Import([]byte(text))
		require.ErrorIs(t, err, registry.ErrParseError, "input %q should be a parse error", text)
	}
}

func TestImport_EmptyImport(t *testing.T) {
	for _, text := range []string{`[]`, `{"sites":[]}`, `[{"name":"","url":"","key":""}]`} {
		_, err := Import([]byte(text))
		require.ErrorIs(t, err, registry.ErrEmptyImport, "input %q should be an empty import", text)
	}
}

func TestImport_ObjectWithSitesField(t *testing.T) {
	text := `{"version": 7, "sites":[{"name":"Example","url":"https://example.com","key":"E"}]}`
	imported, err := Import([]byte(text))
	require.NoError(t, err, "a future version field is tolerated, not branched on")
	require.Len(t, imported, 1)
	assert.Equal(t, "Example", imported[0].Name)
}
