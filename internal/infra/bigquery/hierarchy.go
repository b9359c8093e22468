package bigquery

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQueryHierarchyRepository is the concrete implementation of
// HierarchyRepository backed by BigQuery. It holds a shared client to avoid
// creating a new connection for each table.
type BigQueryHierarchyRepository struct {
	client  *bigquery.Client
	dataset string
}

// NewBigQueryHierarchyRepository creates a repository with a shared BigQuery
// client for the given project and dataset.
func NewBigQueryHierarchyRepository(ctx context.Context, projectID, dataset string) (*BigQueryHierarchyRepository, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("NewBigQueryHierarchyRepository: creating client: %w", err)
	}
	return &BigQueryHierarchyRepository{client: client, dataset: dataset}, nil
}

// Close closes the BigQuery client connection.
func (r *BigQueryHierarchyRepository) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// ListStates returns all states ordered by name.
func (r *BigQueryHierarchyRepository) ListStates(ctx context.Context) ([]StateRow, error) {
	return readRows[StateRow](ctx, r, "ListStates", `
		SELECT state_id, name, uf, code
		FROM %s.states
		ORDER BY name
	`)
}

// ListBanks returns all banks ordered by code.
func (r *BigQueryHierarchyRepository) ListBanks(ctx context.Context) ([]BankRow, error) {
	return readRows[BankRow](ctx, r, "ListBanks", `
		SELECT bank_id, code, name, branch_mask, account_mask
		FROM %s.banks
		ORDER BY code
	`)
}

// ListActiveRegionals returns active regionals ordered by name.
func (r *BigQueryHierarchyRepository) ListActiveRegionals(ctx context.Context) ([]RegionalRow, error) {
	return readRows[RegionalRow](ctx, r, "ListActiveRegionals", `
		SELECT regional_id, state_id, name, cnpj, owner_name,
		       bank_id, bank_branch, bank_account, city_name,
		       is_active, activated_date, retired_ts
		FROM %s.regionals
		WHERE is_active = TRUE
		ORDER BY name
	`)
}

// ListCities returns all cities ordered by name.
func (r *BigQueryHierarchyRepository) ListCities(ctx context.Context) ([]CityRow, error) {
	return readRows[CityRow](ctx, r, "ListCities", `
		SELECT city_id, regional_id, name
		FROM %s.cities
		ORDER BY name
	`)
}

// ListActiveCongregations returns active congregations ordered by name.
func (r *BigQueryHierarchyRepository) ListActiveCongregations(ctx context.Context) ([]CongregationRow, error) {
	return readRows[CongregationRow](ctx, r, "ListActiveCongregations", `
		SELECT congregation_id, city_id, regional_id, name,
		       short_code, suffix_code, txid_base, extra_cents, is_active
		FROM %s.congregations
		WHERE is_active = TRUE
		ORDER BY name
	`)
}

// ListActivePurposes returns active purposes ordered by name.
func (r *BigQueryHierarchyRepository) ListActivePurposes(ctx context.Context) ([]PurposeRow, error) {
	return readRows[PurposeRow](ctx, r, "ListActivePurposes", `
		SELECT purpose_id, name, display_label, txid_suffix, is_active
		FROM %s.purposes
		WHERE is_active = TRUE
		ORDER BY name
	`)
}

// readRows runs a query (with the dataset substituted into %s) and collects
// every row into a slice.
func readRows[T any](ctx context.Context, r *BigQueryHierarchyRepository, op, query string) ([]T, error) {
	q := r.client.Query(fmt.Sprintf(query, r.dataset))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: query read: %w", op, err)
	}

	var rows []T
	for {
		var row T
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: iter next: %w", op, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
