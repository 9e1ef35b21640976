package business

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

const hierarchical = `
BUSINESS_NAME: Green Acres
WEBSITE_URL: https://greenacres.example
SERVICES:
  - NAME: Lawn Care
    URL: /lawn-care/
    SUB_SERVICES:
      - NAME: Mowing
        URL: /lawn-care/mowing/
      - NAME: Edging
        URL: /lawn-care/edging/
  - NAME: Tree Service
    URL: /tree-service/
  - NAME: Hardscaping
    URL: /hardscaping/
    SUB_SERVICES:
      - NAME: Patios
        URL: /hardscaping/patios/
LOCATIONS:
  - CITY: Austin
    STATE: TX
  - CITY: Dallas
    STATE: TX
SOCIAL_MEDIA:
  FACEBOOK:
    URL: https://facebook.com/greenacres
  TWITTER: https://twitter.com/greenacres
  YELP:
    URL: ""
CONTACT:
  phone: 555-0100
  EMAIL: hi@greenacres.example
`

func TestParse_PreservesOrder(t *testing.T) {
	rec, err := Parse([]byte("ZED: 1\nALPHA: 2\nMID: {b: 1, a: 2}\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"ZED", "ALPHA", "MID"}, rec.Keys())
	assert.Equal(t, []string{"b", "a"}, rec.Section("MID").Keys())
}

func TestParse_ScalarKinds(t *testing.T) {
	rec, err := Parse([]byte("S: text\nI: 42\nF: 4.9\nB: true\nN: ~\nQ: \"42\"\n"))
	require.NoError(t, err)

	assert.Equal(t, KindString, rec.Get("S").Kind())
	assert.Equal(t, KindInt, rec.Get("I").Kind())
	assert.Equal(t, KindFloat, rec.Get("F").Kind())
	assert.Equal(t, KindBool, rec.Get("B").Kind())
	assert.True(t, rec.Get("N").IsNull())
	assert.Equal(t, KindString, rec.Get("Q").Kind())

	b, err := json.Marshal(rec.Root())
	require.NoError(t, err)
	assert.JSONEq(t, `{"S":"text","I":42,"F":4.9,"B":true,"N":null,"Q":"42"}`, string(b))
}

func TestParse_MergeKeys(t *testing.T) {
	rec, err := Parse([]byte("BASE: &b {CITY: Austin, STATE: TX}\nHQ:\n  <<: *b\n  STATE: CA\n"))
	require.NoError(t, err)

	hq := rec.Section("HQ")
	assert.Equal(t, []string{"STATE", "CITY"}, hq.Keys())
	assert.Equal(t, "CA", hq.Get("STATE").Text())
	assert.Equal(t, "Austin", hq.Get("CITY").Text())
}

func TestParse_RejectsNonMapping(t *testing.T) {
	for _, doc := range []string{"", "- a\n- b\n", "just text\n"} {
		_, err := Parse([]byte(doc))
		require.ErrorIs(t, err, errNotMapping, "doc %q", doc)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "business.yaml"))
	require.Error(t, err)
	assert.True(t, sgerrors.IsCategory(err, sgerrors.CategoryBusiness))
	se, ok := sgerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "business file not found", se.Message)
	assert.True(t, se.IsFatal())

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("A: [unclosed\n"), 0o600))
	_, err = Load(bad)
	se, ok = sgerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "business file could not be parsed", se.Message)

	list := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(list, []byte("- a\n"), 0o600))
	_, err = Load(list)
	se, ok = sgerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "business file must contain a top-level mapping", se.Message)
}

func TestRecord_HierarchicalServices(t *testing.T) {
	rec, err := Parse([]byte(hierarchical))
	require.NoError(t, err)

	assert.Equal(t, ShapeRecords, rec.ServicesShape())

	subCount := 0
	for _, s := range rec.Services() {
		subCount += len(s.SubServices)
	}
	names := rec.AllServiceNames()
	assert.Len(t, names, len(rec.Services())+subCount)

	want := []string{"Lawn Care", "Mowing", "Edging", "Tree Service", "Hardscaping", "Patios"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("AllServiceNames mismatch (-want +got):\n%s", diff)
	}

	// No CORE_SERVICES: the top-level services stand in.
	assert.Equal(t, []string{"Lawn Care", "Tree Service", "Hardscaping"}, rec.CoreServiceNames())
	assert.Equal(t, []string{"/lawn-care/", "/tree-service/", "/hardscaping/"}, rec.CoreServiceURLs())
}

func TestRecord_FlatServicesGetSlugURLs(t *testing.T) {
	rec, err := Parse([]byte("SERVICES:\n  - Lawn & Garden (Residential)\n  - Snow Removal\n"))
	require.NoError(t, err)

	assert.Equal(t, ShapeFlat, rec.ServicesShape())
	want := []Service{
		{Name: "Lawn & Garden (Residential)", URL: "/lawn-and-garden-residential/"},
		{Name: "Snow Removal", URL: "/snow-removal/"},
	}
	if diff := cmp.Diff(want, rec.Services()); diff != "" {
		t.Errorf("Services mismatch (-want +got):\n%s", diff)
	}
}

func TestRecord_CoreServicesAndExplicitURLs(t *testing.T) {
	rec, err := Parse([]byte(`
SERVICES: [Ignored]
CORE_SERVICES: [Fencing, Decks]
CORE_SERVICES_URLS: [/fences/]
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Fencing", "Decks"}, rec.CoreServiceNames())
	assert.Equal(t, []string{"/fences/", "/decks/"}, rec.CoreServiceURLs())
}

func TestRecord_Locations(t *testing.T) {
	rec, err := Parse([]byte(hierarchical))
	require.NoError(t, err)

	assert.Equal(t, ShapeRecords, rec.LocationsShape())
	assert.Equal(t, []string{"Austin, TX", "Dallas, TX"}, rec.LocationLabels())
	assert.Equal(t, "Austin-TX", rec.Locations()[0].Dashed())

	flat, err := Parse([]byte("LOCATIONS: [Austin, Round Rock]\nLOCATIONS_ARRAY: [Austin TX]\n"))
	require.NoError(t, err)
	assert.Equal(t, ShapeFlat, flat.LocationsShape())
	assert.Equal(t, "Round Rock", flat.Locations()[1].Label())
	assert.Equal(t, []string{"Austin TX"}, flat.LocationLabels())
}

func TestRecord_PartialLocations(t *testing.T) {
	l := Location{City: "Austin", Structured: true}
	assert.Equal(t, "Austin", l.Label())
	l = Location{State: "TX", Structured: true}
	assert.Equal(t, "TX", l.Dashed())
}

func TestRecord_SocialAndContact(t *testing.T) {
	rec, err := Parse([]byte(hierarchical))
	require.NoError(t, err)

	assert.Equal(t, []SocialProfile{
		{Platform: "FACEBOOK", URL: "https://facebook.com/greenacres"},
		{Platform: "TWITTER", URL: "https://twitter.com/greenacres"},
	}, rec.Social())
	assert.Equal(t, "https://twitter.com/greenacres", rec.SocialURL("twitter"))
	assert.Equal(t, "", rec.SocialURL("yelp"))

	assert.Equal(t, "555-0100", rec.Field(KeyContact, "PHONE"))
	assert.Equal(t, "hi@greenacres.example", rec.Field(KeyContact, "EMAIL"))
	assert.Equal(t, "n/a", rec.FieldOr(KeyContact, "ZIP", "n/a"))
}

func TestRecord_Path(t *testing.T) {
	rec, err := Parse([]byte(hierarchical))
	require.NoError(t, err)

	v, ok := rec.Path("CONTACT.EMAIL")
	require.True(t, ok)
	assert.Equal(t, "hi@greenacres.example", v.Text())

	_, ok = rec.Path("CONTACT.PHONE")
	assert.False(t, ok, "exact-case path must not fold")

	_, ok = rec.Path("BUSINESS_NAME.X")
	assert.False(t, ok)
}

func TestRecord_NameFallbacks(t *testing.T) {
	rec, err := Parse([]byte("SITE_NAME: Site\nBASE_URL: https://base.example\n"))
	require.NoError(t, err)

	assert.Equal(t, "Site", rec.BusinessName("Our Company"))
	assert.Equal(t, "https://base.example", rec.WebsiteURL("https://example.com"))
	assert.Equal(t, "Our Company", New(nil).BusinessName("Our Company"))
}
