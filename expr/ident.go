package expr

import "strconv"

// AliasSet hands out table aliases that are unique within one query
// compilation. It is created per query and discarded after rendering.
type AliasSet struct {
	used map[string]struct{}
}

func NewAliasSet() *AliasSet {
	return &AliasSet{used: make(map[string]struct{}, 4)}
}

// Claim returns preferred if unused, otherwise preferred2, preferred3, …
func (s *AliasSet) Claim(preferred string) string {
	if _, taken := s.used[preferred]; !taken {
		s.used[preferred] = struct{}{}
		return preferred
	}
	for n := 2; ; n++ {
		candidate := preferred + strconv.Itoa(n)
		if _, taken := s.used[candidate]; !taken {
			s.used[candidate] = struct{}{}
			return candidate
		}
	}
}
