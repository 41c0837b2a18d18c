package modeling

import (
	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

// factorSet holds the raw, uncomposed modifiers of one platform. Every
// value is a positive multiplier; missing benchmarks are 1.
type factorSet struct {
	season, industry, creative, competition  domain.Modifier
	demographic, location, device, targeting domain.Modifier
}

func (f factorSet) cpm() []float64 {
	return []float64{f.season.CPM, f.industry.CPM, f.creative.CPM, f.competition.CPM,
		f.demographic.CPM, f.location.CPM, f.targeting.CPM}
}

func (f factorSet) ctr() []float64 {
	return []float64{f.season.CTR, f.industry.CTR, f.creative.CTR, f.competition.CTR,
		f.demographic.CTR, f.device.CTR, f.targeting.CTR}
}

func (f factorSet) cvr() []float64 {
	return []float64{f.season.CVR, f.industry.CVR, f.creative.CVR, f.competition.CVR,
		f.demographic.CVR, f.location.CVR, f.device.CVR, f.targeting.CVR}
}

var neutral = domain.Modifier{CPM: 1, CTR: 1, CVR: 1}

func collectFactors(repo port.BenchmarkRepository, platform string, s Scenario) factorSet {
	return factorSet{
		season:      seasonModifier(repo, s.Seasons),
		industry:    orNeutral(domain.Modifier{CPM: s.Industry.CPMMod, CTR: s.Industry.CTRMod, CVR: s.Industry.CVRMod}),
		creative:    lookup(repo.Creative, s.Creative),
		competition: lookup(repo.Competition, s.Competition),
		demographic: demographicModifier(repo, platform, s.Audience),
		location:    locationModifier(repo, s.Audience.Locations),
		device:      deviceModifier(repo, platform, s.Audience.Devices),
		targeting:   targetingModifier(repo, s.Audience),
	}
}

// seasonModifier averages the multipliers of the active seasons.
func seasonModifier(repo port.BenchmarkRepository, seasons []string) domain.Modifier {
	mods := make([]domain.Modifier, 0, len(seasons))
	for _, key := range seasons {
		sb, ok := repo.Season(key)
		if !ok {
			mods = append(mods, neutral)
			continue
		}
		mods = append(mods, orNeutral(domain.Modifier{CPM: sb.CPMMult, CTR: sb.CTRMult, CVR: sb.CVRMult}))
	}
	return meanModifier(mods)
}

// demographicModifier is the mean over the selected age buckets times the
// gender modifier, both from the platform's own table.
func demographicModifier(repo port.BenchmarkRepository, platform string, a domain.Audience) domain.Modifier {
	table, ok := repo.Demographics(platform)
	if !ok {
		return neutral
	}
	ages := make([]domain.Modifier, 0, len(a.AgeGroups))
	for _, age := range domain.NormalizeKeys(a.AgeGroups) {
		ages = append(ages, orNeutral(table.Ages[age]))
	}
	ageMod := meanModifier(ages)

	gender := domain.NormalizeKey(a.Gender)
	genderMod := neutral
	if gender != "" && gender != "all" {
		genderMod = orNeutral(table.Genders[gender])
	}
	return domain.Modifier{
		CPM: ageMod.CPM * genderMod.CPM,
		CTR: ageMod.CTR * genderMod.CTR,
		CVR: ageMod.CVR * genderMod.CVR,
	}
}

func locationModifier(repo port.BenchmarkRepository, locations []string) domain.Modifier {
	mods := make([]domain.Modifier, 0, len(locations))
	for _, loc := range domain.NormalizeKeys(locations) {
		lp, ok := repo.Location(loc)
		if !ok {
			mods = append(mods, neutral)
			continue
		}
		mods = append(mods, orNeutral(domain.Modifier{CPM: lp.CPMMod, CVR: lp.CVRMod}))
	}
	return meanModifier(mods)
}

func deviceModifier(repo port.BenchmarkRepository, platform string, devices []string) domain.Modifier {
	mods := make([]domain.Modifier, 0, len(devices))
	for _, d := range domain.NormalizeKeys(devices) {
		dm, ok := repo.Device(platform, d)
		if !ok {
			mods = append(mods, neutral)
			continue
		}
		mods = append(mods, orNeutral(domain.Modifier{CTR: dm.CTRMod, CVR: dm.CVRMod}))
	}
	return meanModifier(mods)
}

// targetingModifier averages over interests and behaviors together.
func targetingModifier(repo port.BenchmarkRepository, a domain.Audience) domain.Modifier {
	tags := domain.NormalizeKeys(append(append([]string(nil), a.Interests...), a.Behaviors...))
	mods := make([]domain.Modifier, 0, len(tags))
	for _, tag := range tags {
		mods = append(mods, lookup(repo.Targeting, tag))
	}
	return meanModifier(mods)
}

func lookup(fn func(string) (domain.Modifier, bool), key string) domain.Modifier {
	if key == "" {
		return neutral
	}
	m, ok := fn(key)
	if !ok {
		return neutral
	}
	return orNeutral(m)
}

// orNeutral replaces unset (non-positive) fields with 1.
func orNeutral(m domain.Modifier) domain.Modifier {
	if m.CPM <= 0 {
		m.CPM = 1
	}
	if m.CTR <= 0 {
		m.CTR = 1
	}
	if m.CVR <= 0 {
		m.CVR = 1
	}
	return m
}

func meanModifier(mods []domain.Modifier) domain.Modifier {
	if len(mods) == 0 {
		return neutral
	}
	var sum domain.Modifier
	for _, m := range mods {
		sum.CPM += m.CPM
		sum.CTR += m.CTR
		sum.CVR += m.CVR
	}
	n := float64(len(mods))
	return domain.Modifier{CPM: sum.CPM / n, CTR: sum.CTR / n, CVR: sum.CVR / n}
}
