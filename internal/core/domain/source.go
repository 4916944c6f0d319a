package domain

import (
	"encoding/json"
	"net"
)

// Source is the request-provenance value object attached to activity records.
// It is never persisted on its own, only serialized into metadata.
type Source struct {
	ip       string
	browser  string
	referrer string
	platform string
	version  string
}

// NewSourceParams carries the header-derived provenance fields.
type NewSourceParams struct {
	IP       string
	Browser  string
	Referrer string
	Platform string
	Version  string
}

// NewSource validates the provenance input. The IP is mandatory and must
// parse; everything else is best effort.
func NewSource(p NewSourceParams) (*Source, error) {
	if p.IP == "" {
		return nil, errValidation("Request source must contain an IP.")
	}
	if net.ParseIP(p.IP) == nil {
		return nil, errValidation("Request source must contain a valid IP.")
	}
	return &Source{
		ip:       p.IP,
		browser:  p.Browser,
		referrer: p.Referrer,
		platform: p.Platform,
		version:  p.Version,
	}, nil
}

func (s *Source) IP() string       { return s.ip }
func (s *Source) Browser() string  { return s.browser }
func (s *Source) Referrer() string { return s.referrer }
func (s *Source) Platform() string { return s.platform }
func (s *Source) Version() string  { return s.version }

// JSON renders the provenance for activity metadata. A nil source renders as
// an empty object.
func (s *Source) JSON() string {
	if s == nil {
		return "{}"
	}
	b, _ := json.Marshal(map[string]string{
		"ip":       s.ip,
		"browser":  s.browser,
		"referrer": s.referrer,
		"platform": s.platform,
		"version":  s.version,
	})
	return string(b)
}
