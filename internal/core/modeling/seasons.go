package modeling

import "mesa-planner/internal/core/domain"

// DefaultMaxActiveSeasons is how many seasons shape a projection at once.
const DefaultMaxActiveSeasons = 2

// ResolveSeasons keeps the first limit distinct seasons as active and
// records the rest as dropped. "none" entries are ignored. A non-positive
// limit selects DefaultMaxActiveSeasons.
func ResolveSeasons(seasons []string, limit int) domain.SeasonResolution {
	if limit <= 0 {
		limit = DefaultMaxActiveSeasons
	}
	res := domain.SeasonResolution{Active: []string{}, Dropped: []string{}}
	for _, s := range domain.NormalizeKeys(seasons) {
		if s == "none" {
			continue
		}
		if len(res.Active) < limit {
			res.Active = append(res.Active, s)
		} else {
			res.Dropped = append(res.Dropped, s)
		}
	}
	return res
}
