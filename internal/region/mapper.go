package region

import (
	"context"
	"fmt"
	"strings"
)

// Mapper resolves codes and free-text names against a static tree.
// It is immutable after construction and safe for concurrent use.
type Mapper struct {
	tree  []Node
	index map[string]Match
}

// NewMapper builds a Mapper over the built-in administrative table.
func NewMapper() *Mapper {
	return NewMapperWithTree(defaultTree)
}

// NewMapperWithTree builds a Mapper over a caller-supplied tree.
func NewMapperWithTree(tree []Node) *Mapper {
	m := &Mapper{tree: tree, index: make(map[string]Match)}
	for _, r := range tree {
		top := Area{Code: r.Code, Name: r.Name}
		m.index[r.Code] = Match{Region: top}
		for _, s := range r.Children {
			sub := Area{Code: s.Code, Name: s.Name}
			m.index[s.Code] = Match{Region: top, SubRegion: &sub}
			for _, d := range s.Children {
				dist := Area{Code: d.Code, Name: d.Name}
				m.index[d.Code] = Match{Region: top, SubRegion: &sub, District: &dist}
			}
		}
	}
	return m
}

// Tree returns the full region tree.
func (m *Mapper) Tree() []Node { return m.tree }

// TopLevelCodes returns the province/metropolitan codes in table order.
func (m *Mapper) TopLevelCodes() []string {
	out := make([]string, 0, len(m.tree))
	for _, r := range m.tree {
		out = append(out, r.Code)
	}
	return out
}

// FindByCode returns the path to code, or false when the code is unknown.
func (m *Mapper) FindByCode(code string) (Match, bool) {
	match, ok := m.index[strings.TrimSpace(code)]
	return match, ok
}

// MapFreeText maps geocoder output such as ("경기도", "성남시 분당구") to the
// most specific known code. region2 is split on whitespace: the first token
// is matched against sub-regions of the matched province and the second
// against that sub-region's districts. When a deeper level does not match,
// the coarsest matched ancestor is returned.
func (m *Mapper) MapFreeText(region1, region2 string) (Resolved, bool) {
	r1 := strings.TrimSpace(region1)
	if r1 == "" {
		return Resolved{}, false
	}
	top, ok := matchNode(m.tree, r1)
	if !ok {
		return Resolved{}, false
	}
	res := Resolved{Code: top.Code, Name: top.Name, Depth: DepthRegion}

	tokens := strings.Fields(region2)
	if len(tokens) == 0 {
		return res, true
	}
	sub, ok := matchNode(top.Children, tokens[0])
	if !ok {
		return res, true
	}
	res = Resolved{Code: sub.Code, Name: sub.Name, Depth: DepthSubRegion}

	if len(tokens) < 2 {
		return res, true
	}
	if dist, ok := matchNode(sub.Children, tokens[1]); ok {
		res = Resolved{Code: dist.Code, Name: dist.Name, Depth: DepthDistrict}
	}
	return res, true
}

// matchNode picks an exact name or alias match first, then the first node
// whose name starts with text or is a prefix of it.
func matchNode(nodes []Node, text string) (Node, bool) {
	for _, n := range nodes {
		if n.Name == text {
			return n, true
		}
		for _, a := range n.Aliases {
			if a == text {
				return n, true
			}
		}
	}
	for _, n := range nodes {
		if strings.HasPrefix(n.Name, text) || strings.HasPrefix(text, n.Name) {
			return n, true
		}
		for _, a := range n.Aliases {
			if strings.HasPrefix(a, text) || strings.HasPrefix(text, a) {
				return n, true
			}
		}
	}
	return Node{}, false
}

// Geocoder turns coordinates into administrative names.
type Geocoder interface {
	RegionAt(ctx context.Context, lat, lng float64) (region1, region2 string, err error)
}

// Locator resolves coordinates to a region code.
type Locator struct {
	mapper   *Mapper
	geocoder Geocoder
}

func NewLocator(m *Mapper, g Geocoder) *Locator {
	return &Locator{mapper: m, geocoder: g}
}

// Locate reverse-geocodes (lat, lng) and maps the names onto the tree.
func (l *Locator) Locate(ctx context.Context, lat, lng float64) (Resolved, error) {
	if l.geocoder == nil {
		return Resolved{}, fmt.Errorf("locate: no geocoder configured")
	}
	r1, r2, err := l.geocoder.RegionAt(ctx, lat, lng)
	if err != nil {
		return Resolved{}, fmt.Errorf("locate: %w", err)
	}
	res, ok := l.mapper.MapFreeText(r1, r2)
	if !ok {
		return Resolved{}, fmt.Errorf("locate %q %q: %w", r1, r2, ErrUnknownCode)
	}
	return res, nil
}
