// Package csp builds Content-Security-Policy header values.
package csp

import (
	"maps"
	"strings"
)

const (
	HeaderName           = "Content-Security-Policy"
	ReportOnlyHeaderName = "Content-Security-Policy-Report-Only"
)

// directiveOrder fixes the output order so headers are stable.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
}

// Policy is an immutable set of CSP directives. Every setter returns a
// copy, so presets can be shared between goroutines.
//
//	p := csp.New().DefaultSrc("'self'").ImgSrc("'self'", "data:")
//	w.Header().Set(p.HeaderName(), p.String())
type Policy struct {
	directives map[string][]string
	reportOnly bool
}

// New returns an empty policy.
func New() Policy {
	return Policy{}
}

func (p Policy) with(name string, sources []string) Policy {
	out := Policy{directives: maps.Clone(p.directives), reportOnly: p.reportOnly}
	if out.directives == nil {
		out.directives = make(map[string][]string)
	}
	out.directives[name] = append([]string(nil), sources...)
	return out
}

func (p Policy) DefaultSrc(sources ...string) Policy     { return p.with("default-src", sources) }
func (p Policy) ScriptSrc(sources ...string) Policy      { return p.with("script-src", sources) }
func (p Policy) StyleSrc(sources ...string) Policy       { return p.with("style-src", sources) }
func (p Policy) ImgSrc(sources ...string) Policy         { return p.with("img-src", sources) }
func (p Policy) FontSrc(sources ...string) Policy        { return p.with("font-src", sources) }
func (p Policy) ConnectSrc(sources ...string) Policy     { return p.with("connect-src", sources) }
func (p Policy) FrameAncestors(sources ...string) Policy { return p.with("frame-ancestors", sources) }
func (p Policy) FormAction(sources ...string) Policy     { return p.with("form-action", sources) }
func (p Policy) BaseURI(sources ...string) Policy        { return p.with("base-uri", sources) }
func (p Policy) ObjectSrc(sources ...string) Policy      { return p.with("object-src", sources) }

// ReportOnly returns a copy that browsers report on but do not enforce.
func (p Policy) ReportOnly(enabled bool) Policy {
	return Policy{directives: p.directives, reportOnly: enabled}
}

// HeaderName is the response header the policy belongs in.
func (p Policy) HeaderName() string {
	if p.reportOnly {
		return ReportOnlyHeaderName
	}
	return HeaderName
}

// String renders the header value. Directives without sources are skipped.
func (p Policy) String() string {
	parts := make([]string, 0, len(p.directives))
	for _, name := range directiveOrder {
		if sources := p.directives[name]; len(sources) > 0 {
			parts = append(parts, name+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// Strict suits JSON endpoints: nothing may load and nothing may frame the
// response.
func Strict() Policy {
	return New().
		DefaultSrc("'none'").
		FrameAncestors("'none'").
		BaseURI("'none'").
		FormAction("'none'")
}

// SwaggerUI allows what the bundled Swagger UI page needs: inline script
// and style, data: images and fetching doc.json from the same origin.
func SwaggerUI() Policy {
	return New().
		DefaultSrc("'self'").
		ScriptSrc("'self'", "'unsafe-inline'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc("'self'", "data:").
		FontSrc("'self'", "data:").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		BaseURI("'self'").
		FormAction("'self'").
		ObjectSrc("'none'")
}
