package business

import (
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/slug"
)

// Well-known top-level keys.
const (
	KeyBusinessName     = "BUSINESS_NAME"
	KeySiteName         = "SITE_NAME"
	KeyWebsiteURL       = "WEBSITE_URL"
	KeyBaseURL          = "BASE_URL"
	KeyPrimaryKeyword   = "PRIMARY_KEYWORD"
	KeyCTAText          = "CTA_TEXT"
	KeyServices         = "SERVICES"
	KeyCoreServices     = "CORE_SERVICES"
	KeyCoreServicesURLs = "CORE_SERVICES_URLS"
	KeyAllServices      = "ALL_SERVICES"
	KeyLocations        = "LOCATIONS"
	KeyLocationsArray   = "LOCATIONS_ARRAY"
	KeyContact          = "CONTACT"
	KeySocialMedia      = "SOCIAL_MEDIA"
	KeyHours            = "HOURS"
	KeyGoogleMaps       = "GOOGLE_MAPS"
	KeyBlogTopics       = "BLOG_TOPICS"
	KeyMeta             = "META"
	KeyCategories       = "CATEGORIES"
	KeyExamples         = "EXAMPLES"
	KeySupportingTopics = "SUPPORTING_TOPICS"
)

// Shape records which of the accepted layouts a list field used.
type Shape int

const (
	ShapeAbsent Shape = iota
	ShapeFlat
	ShapeRecords
)

// Service is the canonical form of a service entry. Flat name entries get a
// slugged URL; record entries keep their URL field, which may be empty.
type Service struct {
	Name        string
	URL         string
	SubServices []Service
}

// Location is the canonical form of a location entry.
type Location struct {
	City       string
	State      string
	URL        string
	Text       string // free-form label for flat string entries
	Structured bool
}

// Label renders "City, State", whichever part is present, or the free-form
// text of a flat entry.
func (l Location) Label() string {
	if !l.Structured {
		return l.Text
	}
	return joinPresent(l.City, l.State, ", ")
}

// Dashed renders "City-State", whichever part is present, or the free-form
// text of a flat entry.
func (l Location) Dashed() string {
	if !l.Structured {
		return l.Text
	}
	return joinPresent(l.City, l.State, "-")
}

func joinPresent(a, b, sep string) string {
	switch {
	case a != "" && b != "":
		return a + sep + b
	case a != "":
		return a
	default:
		return b
	}
}

// SocialProfile is one entry of SOCIAL_MEDIA with a non-empty URL.
type SocialProfile struct {
	Platform string
	URL      string
}

// Record is the loaded business record. It is never mutated after load.
type Record struct {
	root *Map

	services       []Service
	servicesShape  Shape
	coreServices   []Service
	locations      []Location
	locationsShape Shape
	social         []SocialProfile
}

// New builds a record around an existing ordered map.
func New(root *Map) *Record {
	if root == nil {
		root = NewMap()
	}
	return newRecord(root)
}

func newRecord(root *Map) *Record {
	r := &Record{root: root}
	r.services, r.servicesShape = parseServices(root.Get(KeyServices))
	if core, shape := parseServices(root.Get(KeyCoreServices)); shape != ShapeAbsent {
		r.coreServices = core
	} else {
		r.coreServices = r.services
	}
	r.locations, r.locationsShape = parseLocations(root.Get(KeyLocations))
	r.social = parseSocial(root.Get(KeySocialMedia))
	return r
}

func parseServices(v Value) ([]Service, Shape) {
	items := v.Items()
	if len(items) == 0 {
		return nil, ShapeAbsent
	}
	shape := ShapeFlat
	if items[0].IsMap() {
		shape = ShapeRecords
	}
	out := make([]Service, 0, len(items))
	for _, item := range items {
		out = append(out, parseService(item))
	}
	return out, shape
}

func parseService(item Value) Service {
	if !item.IsMap() {
		name := item.Text()
		return Service{Name: name, URL: slug.ServicePath(name)}
	}
	m := item.Map()
	svc := Service{
		Name: m.Fold("NAME").Text(),
		URL:  m.Fold("URL").Text(),
	}
	for _, sub := range m.Fold("SUB_SERVICES").Items() {
		svc.SubServices = append(svc.SubServices, parseService(sub))
	}
	return svc
}

func parseLocations(v Value) ([]Location, Shape) {
	items := v.Items()
	if len(items) == 0 {
		return nil, ShapeAbsent
	}
	shape := ShapeFlat
	if items[0].IsMap() {
		shape = ShapeRecords
	}
	out := make([]Location, 0, len(items))
	for _, item := range items {
		out = append(out, LocationOf(item))
	}
	return out, shape
}

// LocationOf converts a single LOCATIONS entry. Maps become structured
// locations; anything else keeps its plain text.
func LocationOf(item Value) Location {
	if !item.IsMap() {
		return Location{Text: item.Text()}
	}
	m := item.Map()
	return Location{
		City:       m.Fold("CITY").Text(),
		State:      m.Fold("STATE").Text(),
		URL:        m.Fold("URL").Text(),
		Structured: true,
	}
}

func parseSocial(v Value) []SocialProfile {
	m := v.Map()
	var out []SocialProfile
	for _, platform := range m.Keys() {
		entry := m.Get(platform)
		var url string
		switch {
		case entry.IsMap():
			url = entry.Map().Fold("URL").Text()
		case entry.IsScalar():
			url = entry.Text()
		}
		if url != "" {
			out = append(out, SocialProfile{Platform: platform, URL: url})
		}
	}
	return out
}

// Root returns the record as a map value.
func (r *Record) Root() Value { return MapOf(r.root) }

// Keys returns the top-level keys in document order.
func (r *Record) Keys() []string { return r.root.Keys() }

// Get returns a top-level field, or Null.
func (r *Record) Get(key string) Value { return r.root.Get(key) }

// Has reports whether a top-level field is present.
func (r *Record) Has(key string) bool { return r.root.Has(key) }

// Section returns a nested mapping field such as CONTACT, or nil.
func (r *Record) Section(key string) *Map { return r.root.Get(key).Map() }

// String returns a top-level scalar, or def when it is missing or empty.
func (r *Record) String(key, def string) string {
	return r.root.Get(key).StringOr(def)
}

// Path resolves a dotted path such as "CONTACT.PHONE" through nested maps.
func (r *Record) Path(path string) (Value, bool) {
	cur := r.Root()
	for _, part := range strings.Split(path, ".") {
		if !cur.IsMap() {
			return Null, false
		}
		next, ok := cur.Map().Lookup(part)
		if !ok {
			return Null, false
		}
		cur = next
	}
	return cur, true
}

// Field looks up key in a nested section, upper-case key first and the
// lower-case variant as fallback, e.g. Field("CONTACT", "PHONE").
func (r *Record) Field(section, key string) string {
	return r.Section(section).Fold(key).Text()
}

// FieldOr is Field with a default for missing or empty values.
func (r *Record) FieldOr(section, key, def string) string {
	if s := r.Field(section, key); s != "" {
		return s
	}
	return def
}

// BusinessName returns BUSINESS_NAME, then SITE_NAME, then def.
func (r *Record) BusinessName(def string) string {
	return r.String(KeyBusinessName, r.String(KeySiteName, def))
}

// WebsiteURL returns WEBSITE_URL, then BASE_URL, then def.
func (r *Record) WebsiteURL(def string) string {
	return r.String(KeyWebsiteURL, r.String(KeyBaseURL, def))
}

// Services returns the canonical SERVICES entries.
func (r *Record) Services() []Service { return r.services }

// ServicesShape reports which layout SERVICES used.
func (r *Record) ServicesShape() Shape { return r.servicesShape }

// CoreServices returns CORE_SERVICES, or SERVICES when CORE_SERVICES is absent.
func (r *Record) CoreServices() []Service { return r.coreServices }

// CoreServiceNames returns the names of the core services.
func (r *Record) CoreServiceNames() []string {
	out := make([]string, 0, len(r.coreServices))
	for _, s := range r.coreServices {
		out = append(out, s.Name)
	}
	return out
}

// CoreServiceURLs returns one URL per core service. Entries of an explicit
// CORE_SERVICES_URLS list take precedence by position; use
// Get(KeyCoreServicesURLs) for the list itself.
func (r *Record) CoreServiceURLs() []string {
	explicit := r.Get(KeyCoreServicesURLs).StringList()
	out := make([]string, 0, len(r.coreServices))
	for i, s := range r.coreServices {
		if i < len(explicit) && explicit[i] != "" {
			out = append(out, explicit[i])
			continue
		}
		url := s.URL
		if url == "" {
			url = slug.ServicePath(s.Name)
		}
		out = append(out, url)
	}
	return out
}

// AllServiceNames returns ALL_SERVICES when present, otherwise every service
// name with its sub-services flattened in directly after it.
func (r *Record) AllServiceNames() []string {
	if explicit := r.Get(KeyAllServices); !explicit.IsEmpty() {
		return explicit.StringList()
	}
	return FlattenNames(r.services)
}

// FlattenNames lists each service followed by its sub-services.
func FlattenNames(services []Service) []string {
	var out []string
	for _, s := range FlattenServices(services) {
		out = append(out, s.Name)
	}
	return out
}

// FlattenServices lists each service followed by its sub-services, depth first.
func FlattenServices(services []Service) []Service {
	var out []Service
	for _, s := range services {
		out = append(out, Service{Name: s.Name, URL: s.URL})
		out = append(out, FlattenServices(s.SubServices)...)
	}
	return out
}

// Locations returns the canonical LOCATIONS entries.
func (r *Record) Locations() []Location { return r.locations }

// LocationsShape reports which layout LOCATIONS used.
func (r *Record) LocationsShape() Shape { return r.locationsShape }

// LocationLabels returns LOCATIONS_ARRAY when present, otherwise the
// "City, State" labels of LOCATIONS.
func (r *Record) LocationLabels() []string {
	if explicit := r.Get(KeyLocationsArray); !explicit.IsEmpty() {
		return explicit.StringList()
	}
	out := make([]string, 0, len(r.locations))
	for _, l := range r.locations {
		if label := l.Label(); label != "" {
			out = append(out, label)
		}
	}
	return out
}

// Social returns the SOCIAL_MEDIA entries that carry a URL, in document order.
func (r *Record) Social() []SocialProfile { return r.social }

// SocialURL returns the URL for platform, matched case-insensitively.
func (r *Record) SocialURL(platform string) string {
	for _, p := range r.social {
		if strings.EqualFold(p.Platform, platform) {
			return p.URL
		}
	}
	return ""
}

// BlogTopics returns the BLOG_TOPICS list as strings.
func (r *Record) BlogTopics() []string {
	return r.Get(KeyBlogTopics).StringList()
}
