package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Criteria carries the user-selected filter values. Each empty string
// matches everything; a nil MaxPrice leaves the price unbounded, which
// is equivalent to the slider sitting at the catalog maximum.
type Criteria struct {
	Team     string
	Season   string
	State    string
	Brand    string
	Size     string
	MaxPrice *decimal.Decimal
}

// ApplyFilters returns the products matching every criterion, in catalog
// order. The input is never mutated. Team and season match
// case-insensitively while state, brand and size compare verbatim; the
// storefront has always behaved this way and downstream filter dropdowns
// rely on it.
func ApplyFilters(products []Product, criteria Criteria) []Product {
	team := strings.ToLower(criteria.Team)
	season := strings.ToLower(criteria.Season)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		name := strings.ToLower(p.Name)
		description := strings.ToLower(p.Description)

		matchesTeam := team == "" || strings.Contains(name, team) || strings.Contains(description, team)
		matchesSeason := season == "" || strings.Contains(description, season)
		matchesState := criteria.State == "" || strings.Contains(p.State, criteria.State)
		matchesBrand := criteria.Brand == "" || strings.Contains(p.Brand, criteria.Brand)
		matchesSize := criteria.Size == "" || strings.Contains(p.Size, criteria.Size)
		matchesPrice := criteria.MaxPrice == nil || p.Price.LessThanOrEqual(*criteria.MaxPrice)

		if matchesTeam && matchesSeason && matchesState && matchesBrand && matchesSize && matchesPrice {
			out = append(out, p)
		}
	}
	return out
}

// FilterOptions feeds the storefront filter dropdowns: the distinct
// values present in the catalog, in first-seen order, plus the price
// ceiling for the slider.
type FilterOptions struct {
	Teams    []string        `json:"teams"`
	Seasons  []string        `json:"seasons"`
	Brands   []string        `json:"brands"`
	Sizes    []string        `json:"sizes"`
	MaxPrice decimal.Decimal `json:"max_price"`
}

// BuildFilterOptions derives the dropdown values from a catalog load.
// Blank attributes are skipped; the max price is rounded up to a whole
// amount for the slider.
func BuildFilterOptions(products []Product) FilterOptions {
	opts := FilterOptions{
		Teams:   []string{},
		Seasons: []string{},
		Brands:  []string{},
		Sizes:   []string{},
	}

	seenTeams := map[string]struct{}{}
	seenSeasons := map[string]struct{}{}
	seenBrands := map[string]struct{}{}
	seenSizes := map[string]struct{}{}

	maxPrice := decimal.Zero
	for _, p := range products {
		opts.Teams = appendDistinct(opts.Teams, seenTeams, p.Name)
		opts.Seasons = appendDistinct(opts.Seasons, seenSeasons, p.Description)
		opts.Brands = appendDistinct(opts.Brands, seenBrands, p.Brand)
		opts.Sizes = appendDistinct(opts.Sizes, seenSizes, p.Size)
		if p.Price.GreaterThan(maxPrice) {
			maxPrice = p.Price
		}
	}

	opts.MaxPrice = maxPrice.Ceil()
	return opts
}

func appendDistinct(values []string, seen map[string]struct{}, value string) []string {
	if value == "" {
		return values
	}
	if _, ok := seen[value]; ok {
		return values
	}
	seen[value] = struct{}{}
	return append(values, value)
}
