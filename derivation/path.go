// Package derivation holds the grammar of derivation paths.
//
// A path is one of three shapes:
//
//	""                   the identity root
//	"1", "61"            an Ethereum chain id (non-empty, no slash)
//	"//kusama/soft//x"   substrate junctions, "//" hard and "/" soft
//
// Parsing never fails. Render is the exact inverse of Parse for every string
// that is empty, Ethereum-shaped or starts with a slash.
package derivation

import (
	"strings"
)

const (
	hardPrefix = "//"
	softPrefix = "/"
)

type Kind uint8

const (
	KindRoot Kind = iota
	KindEthereum
	KindSubstrate
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindEthereum:
		return "ethereum"
	case KindSubstrate:
		return "substrate"
	}
	return "unknown"
}

// Segment is one derivation junction.
type Segment struct {
	Hard  bool
	Value string
}

func (s Segment) String() string {
	if s.Hard {
		return hardPrefix + s.Value
	}
	return softPrefix + s.Value
}

type Path struct {
	Kind     Kind
	ChainID  string
	Segments []Segment
}

func Parse(raw string) Path {
	if raw != "" && !strings.Contains(raw, softPrefix) {
		return Path{Kind: KindEthereum, ChainID: raw}
	}

	segments := tokenize(raw)
	if len(segments) == 0 {
		return Path{Kind: KindRoot}
	}
	return Path{Kind: KindSubstrate, Segments: segments}
}

func tokenize(raw string) []Segment {
	var segments []Segment
	i := 0
	for i < len(raw) {
		hard := false
		if raw[i] == '/' {
			i++
			if i < len(raw) && raw[i] == '/' {
				hard = true
				i++
			}
		}
		// leading text without a slash is read as a soft junction
		start := i
		for i < len(raw) && raw[i] != '/' {
			i++
		}
		segments = append(segments, Segment{Hard: hard, Value: raw[start:i]})
	}
	return segments
}

func Render(p Path) string {
	switch p.Kind {
	case KindEthereum:
		return p.ChainID
	case KindRoot:
		return ""
	}

	var sb strings.Builder
	for _, s := range p.Segments {
		sb.WriteString(s.String())
	}
	return sb.String()
}

func (p Path) String() string {
	return Render(p)
}

func (p Path) IsRoot() bool {
	return p.Kind == KindRoot
}

func (p Path) IsEthereum() bool {
	return p.Kind == KindEthereum
}

func (p Path) Depth() int {
	return len(p.Segments)
}

func (p Path) FirstSegment() (Segment, bool) {
	if len(p.Segments) == 0 {
		return Segment{}, false
	}
	return p.Segments[0], true
}

// Tail drops the first junction. The tail of a single-junction path is the root.
func (p Path) Tail() Path {
	if p.Kind != KindSubstrate || len(p.Segments) <= 1 {
		return Path{Kind: KindRoot}
	}
	segments := make([]Segment, len(p.Segments)-1)
	copy(segments, p.Segments[1:])
	return Path{Kind: KindSubstrate, Segments: segments}
}

// IsHardDerived reports whether raw has at least one junction and all of them are hard.
func IsHardDerived(raw string) bool {
	p := Parse(raw)
	if p.Kind != KindSubstrate {
		return false
	}
	for _, s := range p.Segments {
		if !s.Hard {
			return false
		}
	}
	return true
}

// IsSubstratePath is true for the root and every slash-separated path.
func IsSubstratePath(raw string) bool {
	return Parse(raw).Kind != KindEthereum
}

func RemoveSlash(s string) string {
	return strings.ReplaceAll(s, softPrefix, "")
}
