package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownTags(t *testing.T) {
	tests := []struct {
		tag  string
		want Region
	}{
		{"na1", NA1},
		{"NA1", NA1},
		{"na", NA1},
		{"euw1", EUW1},
		{"EUW", EUW1},
		{"eune", EUN1},
		{"kr", KR},
		{"KR", KR},
		{"br", BR1},
		{"jp1", JP1},
		{"lan", LA1},
		{"las", LA2},
		{"oce", OC1},
		{"tr", TR1},
		{"ru", RU},
		{"vn", VN2},
		{" euw1 ", EUW1},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.tag))
		})
	}
}

func TestResolveUnknownTagFallsBack(t *testing.T) {
	for _, tag := range []string{"", "zz9", "T1", "faker", "???", "na2"} {
		assert.Equal(t, DefaultRegion, Resolve(tag), "tag %q", tag)
	}
}

func TestResolveOrUsesCallerFallback(t *testing.T) {
	for _, tag := range []string{"", "zz9", "T1"} {
		assert.Equal(t, KR, ResolveOr(tag, KR), "tag %q", tag)
	}
	// known tags still win over the fallback
	assert.Equal(t, EUW1, ResolveOr("euw", KR))
}

func TestResolveIsDeterministic(t *testing.T) {
	for _, tag := range []string{"euw", "zz9", "KR"} {
		assert.Equal(t, Resolve(tag), Resolve(tag))
	}
}

func TestContinent(t *testing.T) {
	tests := []struct {
		region Region
		want   Continent
	}{
		{NA1, Americas},
		{BR1, Americas},
		{EUW1, Europe},
		{TR1, Europe},
		{KR, Asia},
		{JP1, Asia},
		{OC1, Sea},
		{VN2, Sea},
		{Region("bogus"), Americas},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.region.Continent())
	}
}
