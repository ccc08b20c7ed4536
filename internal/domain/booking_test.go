package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{
			name: "disjoint",
			s1:   date(2026, 1, 1), e1: date(2026, 1, 5),
			s2: date(2026, 1, 10), e2: date(2026, 1, 15),
			want: false,
		},
		{
			name: "adjacent ranges share a boundary day only",
			s1:   date(2026, 1, 1), e1: date(2026, 1, 5),
			s2: date(2026, 1, 5), e2: date(2026, 1, 10),
			want: false,
		},
		{
			name: "partial overlap",
			s1:   date(2026, 1, 1), e1: date(2026, 1, 7),
			s2: date(2026, 1, 5), e2: date(2026, 1, 10),
			want: true,
		},
		{
			name: "contained",
			s1:   date(2026, 1, 1), e1: date(2026, 1, 10),
			s2: date(2026, 1, 3), e2: date(2026, 1, 5),
			want: true,
		},
		{
			name: "identical",
			s1:   date(2026, 1, 1), e1: date(2026, 1, 5),
			s2: date(2026, 1, 1), e2: date(2026, 1, 5),
			want: true,
		},
		{
			name: "overlap on a single night",
			s1:   date(2026, 1, 1), e1: date(2026, 1, 5),
			s2: date(2026, 1, 4), e2: date(2026, 1, 8),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

// The simple two-clause predicate must agree with the spelled-out case
// split (new starts inside, new ends inside, new covers) on every small
// interval pair.
func TestOverlaps_EquivalentToCaseSplit(t *testing.T) {
	day := func(d int) time.Time { return date(2026, 1, d) }

	for s1 := 1; s1 <= 6; s1++ {
		for e1 := s1 + 1; e1 <= 7; e1++ {
			for s2 := 1; s2 <= 6; s2++ {
				for e2 := s2 + 1; e2 <= 7; e2++ {
					startsInside := !day(s2).Before(day(s1)) && day(s2).Before(day(e1))
					endsInside := day(e2).After(day(s1)) && !day(e2).After(day(e1))
					covers := day(s2).Before(day(s1)) && day(e2).After(day(e1))
					want := startsInside || endsInside || covers

					got := Overlaps(day(s1), day(e1), day(s2), day(e2))
					if got != want {
						t.Fatalf("Overlaps([%d,%d), [%d,%d)) = %v, case split says %v",
							s1, e1, s2, e2, got, want)
					}
				}
			}
		}
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(date(2026, 1, 1), date(2026, 1, 2)))
	assert.Equal(t, 3, Nights(date(2026, 1, 10), date(2026, 1, 13)))
	assert.Equal(t, 31, Nights(date(2026, 1, 1), date(2026, 2, 1)))
}

func TestTruncateToDate(t *testing.T) {
	in := time.Date(2026, 3, 14, 15, 9, 26, 535, time.UTC)
	assert.Equal(t, date(2026, 3, 14), TruncateToDate(in))

	// already at midnight
	assert.Equal(t, date(2026, 3, 14), TruncateToDate(date(2026, 3, 14)))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleCustomer.Valid())
	assert.False(t, Role("Admin").Valid())
	assert.False(t, Role("").Valid())
}
