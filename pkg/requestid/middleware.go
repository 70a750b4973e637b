package requestid

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"
)

const (
	// DefaultHeader is the response header the identifier is written to.
	DefaultHeader = "request-id"
	// DefaultIDLength is the length of a canonical UUID.
	DefaultIDLength = canonicalLength
)

// AssignFunc observes every identifier the middleware hands out. reused is
// true when an outer layer had already stored the ID.
type AssignFunc func(r *http.Request, id ID, reused bool)

// Middleware assigns request identifiers. Builder methods return modified
// copies, so a value can be shared once it is wired into a router.
type Middleware struct {
	generator  Generator
	headerName string
	idLength   int
	format     Format
	onAssign   AssignFunc
}

// New returns a middleware generating identifiers of idLength characters.
func New(idLength int) (*Middleware, error) {
	gen, err := LengthGenerator(idLength)
	if err != nil {
		return nil, err
	}
	return &Middleware{
		generator:  gen,
		headerName: DefaultHeader,
		idLength:   idLength,
		format:     FormatDefault,
	}, nil
}

// MustNew is like New but panics on a length below one.
func MustNew(idLength int) *Middleware {
	m, err := New(idLength)
	if err != nil {
		panic(err)
	}
	return m
}

// Default returns a middleware generating full 36-character UUIDs under the
// default header.
func Default() *Middleware {
	return MustNew(DefaultIDLength)
}

func (m *Middleware) clone() *Middleware {
	c := *m
	return &c
}

// Generator replaces the identifier generator.
func (m *Middleware) Generator(gen Generator) *Middleware {
	c := m.clone()
	c.generator = gen
	c.format = FormatGenerator
	return c
}

// HeaderName sets the response header the identifier is appended to.
func (m *Middleware) HeaderName(name string) *Middleware {
	c := m.clone()
	c.headerName = name
	return c
}

// WithIDLength switches to the default generator with the given length. It
// panics on a length below one.
func (m *Middleware) WithIDLength(idLength int) *Middleware {
	gen, err := LengthGenerator(idLength)
	if err != nil {
		panic(err)
	}
	c := m.clone()
	c.generator = gen
	c.idLength = idLength
	c.format = FormatDefault
	return c
}

// WithFullUUID generates canonical 36-character UUIDs.
func (m *Middleware) WithFullUUID() *Middleware {
	c := m.clone()
	c.generator = FullUUID
	c.idLength = canonicalLength
	c.format = FormatFull
	return c
}

// WithSimpleUUID generates 32-character UUIDs without hyphens.
func (m *Middleware) WithSimpleUUID() *Middleware {
	c := m.clone()
	c.generator = SimpleUUID
	c.idLength = simpleLength
	c.format = FormatSimple
	return c
}

// WithCustomUUIDFormat renders a fresh UUID with format for every request.
// Length and character set of the result are up to the caller.
func (m *Middleware) WithCustomUUIDFormat(format func(uuid.UUID) string) *Middleware {
	c := m.clone()
	c.generator = CustomUUIDFormat(format)
	c.format = FormatCustom
	return c
}

// OnAssign registers fn to be called once per request after the identifier is
// settled and before the wrapped handler runs.
func (m *Middleware) OnAssign(fn AssignFunc) *Middleware {
	c := m.clone()
	c.onAssign = fn
	return c
}

// IDLength returns the configured identifier length. It is informational:
// custom generators are not checked against it.
func (m *Middleware) IDLength() int {
	return m.idLength
}

// Format reports the generation strategy.
func (m *Middleware) Format() Format {
	return m.format
}

// Header returns the configured response header name.
func (m *Middleware) Header() string {
	return m.headerName
}

// Validate checks that the header name can be written to a response.
func (m *Middleware) Validate() error {
	if !httpguts.ValidHeaderFieldName(m.headerName) {
		return &HeaderError{Name: m.headerName}
	}
	return nil
}

// Handler wraps next. A header name or identifier that is not a valid header
// field makes the response fail with a *HeaderError panic.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithScope(r.Context())
		if ctx != r.Context() {
			r = r.WithContext(ctx)
		}
		s := scopeFrom(ctx)

		id, reused := s.assign(func() ID { return ID(m.generator()) })
		s.setCurrent(id.String())
		defer s.clearCurrent()

		zerolog.Ctx(ctx).Debug().
			Str(LogField, id.String()).
			Bool("reused", reused).
			Msg("request id assigned")

		if m.onAssign != nil {
			m.onAssign(r, id, reused)
		}

		rw := &responseWriter{ResponseWriter: w, name: m.headerName, value: id.String()}
		next.ServeHTTP(rw, r)
		rw.commit()
	})
}
