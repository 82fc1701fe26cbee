package region

import "errors"

// ErrUnknownCode is returned when a code is not present in the tree.
var ErrUnknownCode = errors.New("unknown region code")

// Node is one administrative area. Top-level nodes carry 2-digit codes;
// sub-regions and districts carry 5-digit codes.
type Node struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Aliases  []string `json:"-"`
	Children []Node   `json:"children,omitempty"`
}

// Area is a node without its subtree.
type Area struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Match is the path from the root of the tree to a code.
type Match struct {
	Region    Area  `json:"region"`
	SubRegion *Area `json:"sub_region,omitempty"`
	District  *Area `json:"district,omitempty"`
}

// Code returns the most specific code in the path.
func (m Match) Code() string {
	switch {
	case m.District != nil:
		return m.District.Code
	case m.SubRegion != nil:
		return m.SubRegion.Code
	default:
		return m.Region.Code
	}
}

// Depth of a resolved match.
const (
	DepthRegion    = 1
	DepthSubRegion = 2
	DepthDistrict  = 3
)

// Resolved is the result of mapping free text onto the tree.
type Resolved struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Depth int    `json:"depth"`
}

// Prefix returns the 2-digit province code every code in the tree starts with.
func Prefix(code string) string {
	if len(code) < 2 {
		return code
	}
	return code[:2]
}
