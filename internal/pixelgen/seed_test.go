package pixelgen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedExpansion(t *testing.T) {
	tests := []struct {
		name string
		a, b Seed
		same bool
	}{
		{name: "same int same value", a: SeedInt64(42), b: SeedInt64(42), same: true},
		{name: "different ints differ", a: SeedInt64(1), b: SeedInt64(2), same: false},
		{name: "same string stable", a: SeedString("spam"), b: SeedString("spam"), same: true},
		{name: "string equals bytes", a: SeedString("spam"), b: SeedBytes([]byte("spam")), same: true},
		{name: "different strings differ", a: SeedString("spam"), b: SeedString("eggs"), same: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, tt.a.Int64(), tt.b.Int64())
			} else {
				assert.NotEqual(t, tt.a.Int64(), tt.b.Int64())
			}
		})
	}
}

func TestSeedRandReplayable(t *testing.T) {
	s := SeedString("spam")
	r1, r2 := s.Rand(), s.Rand()
	for i := 0; i < 16; i++ {
		require.Equal(t, r1.Int63(), r2.Int63(), "draw %d diverged", i)
	}
}

func TestSeedUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Seed
		err  bool
	}{
		{name: "integer", in: `12345`, want: SeedInt64(12345)},
		{name: "negative integer", in: `-7`, want: SeedInt64(-7)},
		{name: "string", in: `"spam"`, want: SeedString("spam")},
		{name: "null stays unset", in: `null`, want: Seed{}},
		{name: "object rejected", in: `{}`, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Seed
			err := json.Unmarshal([]byte(tt.in), &s)
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestSeedDefault(t *testing.T) {
	var s Seed
	assert.True(t, s.IsZero())
	assert.False(t, s.orDefault().IsZero())
}
