package youtube

import (
	"regexp"
	"strings"
)

// IdentifierKind says how a raw channel reference should be resolved.
type IdentifierKind int

const (
	// KindID is a canonical channel ID, usable directly.
	KindID IdentifierKind = iota
	// KindUsername is a legacy username, resolved via channels?forUsername.
	KindUsername
	// KindQuery is anything else: handles, custom URLs, free text. Resolved
	// via channel search.
	KindQuery
)

// String returns the kind name for logs and test output.
func (k IdentifierKind) String() string {
	switch k {
	case KindID:
		return "id"
	case KindUsername:
		return "username"
	default:
		return "query"
	}
}

// Identifier is a classified channel reference.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

var (
	channelPathRe = regexp.MustCompile(`youtube\.com/channel/([A-Za-z0-9_-]+)`)
	userPathRe    = regexp.MustCompile(`youtube\.com/user/([A-Za-z0-9_-]+)`)
	handlePathRe  = regexp.MustCompile(`youtube\.com/@([A-Za-z0-9_.-]+)`)
	customPathRe  = regexp.MustCompile(`youtube\.com/c/([A-Za-z0-9_.-]+)`)
)

// ClassifyIdentifier maps a raw channel reference to an Identifier. It is
// pure and total: every string classifies, first matching rule wins, and
// anything unrecognized falls through to a free-text query.
func ClassifyIdentifier(raw string) Identifier {
	v := strings.TrimSpace(raw)

	// Bare canonical channel ID.
	if strings.HasPrefix(v, "UC") && len(v) >= 20 {
		return Identifier{Kind: KindID, Value: v}
	}

	if m := channelPathRe.FindStringSubmatch(v); m != nil {
		return Identifier{Kind: KindID, Value: m[1]}
	}
	if m := userPathRe.FindStringSubmatch(v); m != nil {
		return Identifier{Kind: KindUsername, Value: m[1]}
	}
	if m := handlePathRe.FindStringSubmatch(v); m != nil {
		return Identifier{Kind: KindQuery, Value: m[1]}
	}
	if strings.HasPrefix(v, "@") {
		return Identifier{Kind: KindQuery, Value: v[1:]}
	}
	if m := customPathRe.FindStringSubmatch(v); m != nil {
		return Identifier{Kind: KindQuery, Value: m[1]}
	}

	return Identifier{Kind: KindQuery, Value: v}
}
