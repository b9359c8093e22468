package bigquery

import "context"

// HierarchyRepository lists the hierarchy reference tables. The snapshot
// loader depends on this interface so tests can substitute fixed rows.
type HierarchyRepository interface {
	ListStates(ctx context.Context) ([]StateRow, error)
	ListBanks(ctx context.Context) ([]BankRow, error)
	ListActiveRegionals(ctx context.Context) ([]RegionalRow, error)
	ListCities(ctx context.Context) ([]CityRow, error)
	ListActiveCongregations(ctx context.Context) ([]CongregationRow, error)
	ListActivePurposes(ctx context.Context) ([]PurposeRow, error)
}
