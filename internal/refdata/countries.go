package refdata

import "strings"

// CountrySet is the closed list of recognized countries. Membership only;
// there is no group level for countries.
type CountrySet map[string]string

// Contains reports whether name is a recognized country, case-insensitively,
// and returns its canonical spelling.
func (s CountrySet) Contains(name string) (string, bool) {
	canon, ok := s[strings.ToLower(strings.TrimSpace(name))]
	return canon, ok
}

// Standardize returns the canonical spelling for a recognized country and
// "Other" for anything else. Countries are never fuzzy-matched.
func (s CountrySet) Standardize(name string) string {
	if canon, ok := s.Contains(name); ok {
		return canon
	}
	return "Other"
}

// Countries returns the recognized notifying/origin countries: the EU and
// EFTA members that notify into the feed plus the frequent origin countries
// seen in the extracts.
func Countries() CountrySet {
	names := []string{
		"Austria", "Belgium", "Bulgaria", "Croatia", "Cyprus", "Czech Republic",
		"Denmark", "Estonia", "Finland", "France", "Germany", "Greece",
		"Hungary", "Iceland", "Ireland", "Italy", "Latvia", "Liechtenstein",
		"Lithuania", "Luxembourg", "Malta", "Netherlands", "Norway", "Poland",
		"Portugal", "Romania", "Slovakia", "Slovenia", "Spain", "Sweden",
		"Switzerland", "United Kingdom",
		// frequent non-European origins
		"Albania", "Argentina", "Australia", "Bangladesh", "Bosnia and Herzegovina",
		"Brazil", "Canada", "Chile", "China", "Ecuador", "Egypt", "Ghana",
		"India", "Indonesia", "Iran", "Israel", "Japan", "Jordan", "Kenya",
		"Lebanon", "Malaysia", "Mexico", "Moldova", "Morocco", "Nigeria",
		"North Macedonia", "Pakistan", "Peru", "Philippines", "Russia",
		"Senegal", "Serbia", "South Africa", "South Korea", "Sri Lanka",
		"Syria", "Taiwan", "Thailand", "Tunisia", "Turkey", "Ukraine",
		"United Arab Emirates", "United States", "Uruguay", "Vietnam",
	}
	set := make(CountrySet, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = n
	}
	return set
}
