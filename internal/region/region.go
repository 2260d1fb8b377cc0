package region

import "strings"

// Region is a Riot platform routing value (the per-shard clusters that
// summoner, league, mastery and spectator endpoints are scoped to).
type Region string

const (
	NA1  Region = "na1"
	EUW1 Region = "euw1"
	EUN1 Region = "eun1"
	KR   Region = "kr"
	BR1  Region = "br1"
	JP1  Region = "jp1"
	LA1  Region = "la1"
	LA2  Region = "la2"
	OC1  Region = "oc1"
	TR1  Region = "tr1"
	RU   Region = "ru"
	PH2  Region = "ph2"
	SG2  Region = "sg2"
	TH2  Region = "th2"
	TW2  Region = "tw2"
	VN2  Region = "vn2"
)

// DefaultRegion is used whenever a tag does not match any known platform.
// Unknown tags are not an error: lookups proceed against the default shard.
const DefaultRegion = NA1

// Continent is a Riot continental routing value. Account and match-v5
// endpoints are scoped continentally, not per platform.
type Continent string

const (
	Americas Continent = "americas"
	Europe   Continent = "europe"
	Asia     Continent = "asia"
	Sea      Continent = "sea"
)

var byTag = map[string]Region{
	"na1":  NA1,
	"na":   NA1,
	"euw1": EUW1,
	"euw":  EUW1,
	"eun1": EUN1,
	"eune": EUN1,
	"kr":   KR,
	"br1":  BR1,
	"br":   BR1,
	"jp1":  JP1,
	"jp":   JP1,
	"la1":  LA1,
	"lan":  LA1,
	"la2":  LA2,
	"las":  LA2,
	"oc1":  OC1,
	"oce":  OC1,
	"tr1":  TR1,
	"tr":   TR1,
	"ru":   RU,
	"ph2":  PH2,
	"ph":   PH2,
	"sg2":  SG2,
	"sg":   SG2,
	"th2":  TH2,
	"th":   TH2,
	"tw2":  TW2,
	"tw":   TW2,
	"vn2":  VN2,
	"vn":   VN2,
}

var continents = map[Region]Continent{
	NA1:  Americas,
	BR1:  Americas,
	LA1:  Americas,
	LA2:  Americas,
	EUW1: Europe,
	EUN1: Europe,
	TR1:  Europe,
	RU:   Europe,
	KR:   Asia,
	JP1:  Asia,
	OC1:  Sea,
	PH2:  Sea,
	SG2:  Sea,
	TH2:  Sea,
	TW2:  Sea,
	VN2:  Sea,
}

// Resolve maps an arbitrary user-supplied tag to a platform region.
// Matching is case-insensitive and accepts both platform codes ("euw1")
// and the common shorthand ("euw"). Anything unrecognized resolves to
// DefaultRegion; Resolve never fails.
func Resolve(tag string) Region {
	return ResolveOr(tag, DefaultRegion)
}

// ResolveOr is Resolve with a caller-chosen fallback for unknown tags,
// for deployments whose home shard is not DefaultRegion.
func ResolveOr(tag string, fallback Region) Region {
	if r, ok := byTag[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return r
	}
	return fallback
}

// Continent returns the continental routing value for a platform region.
func (r Region) Continent() Continent {
	if c, ok := continents[r]; ok {
		return c
	}
	return Americas
}

func (r Region) String() string {
	return string(r)
}
