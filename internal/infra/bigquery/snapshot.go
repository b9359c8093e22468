package bigquery

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/gmfurtado/pixcards/internal/domain"
)

// LoadSnapshot lists every reference table and builds an immutable hierarchy
// snapshot. Call it again to pick up administrative edits; the previous
// snapshot stays valid for readers already holding it.
func LoadSnapshot(ctx context.Context, repo HierarchyRepository) (*domain.Snapshot, error) {
	stateRows, err := repo.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: states: %w", err)
	}
	bankRows, err := repo.ListBanks(ctx)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: banks: %w", err)
	}
	regionalRows, err := repo.ListActiveRegionals(ctx)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: regionals: %w", err)
	}
	cityRows, err := repo.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: cities: %w", err)
	}
	congregationRows, err := repo.ListActiveCongregations(ctx)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: congregations: %w", err)
	}
	purposeRows, err := repo.ListActivePurposes(ctx)
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: purposes: %w", err)
	}

	today := civil.DateOf(time.Now())

	states := make([]domain.State, 0, len(stateRows))
	for _, r := range stateRows {
		states = append(states, domain.State{
			ID:   r.StateID,
			Name: r.Name,
			UF:   r.UF,
			Code: r.Code,
		})
	}

	banks := make([]domain.Bank, 0, len(bankRows))
	for _, r := range bankRows {
		banks = append(banks, domain.Bank{
			ID:          r.BankID,
			Code:        r.Code,
			Name:        r.Name,
			BranchMask:  r.BranchMask,
			AccountMask: r.AccountMask,
		})
	}

	regionals := make([]domain.Regional, 0, len(regionalRows))
	for _, r := range regionalRows {
		// A regional scheduled for a future activation date is not yet
		// eligible for card generation.
		if r.ActivatedDate.Valid && today.Before(r.ActivatedDate.Date) {
			continue
		}
		regionals = append(regionals, domain.Regional{
			ID:          r.RegionalID,
			StateID:     r.StateID,
			Name:        r.Name,
			CNPJ:        r.CNPJ,
			OwnerName:   r.OwnerName,
			BankID:      r.BankID,
			BankBranch:  r.BankBranch,
			BankAccount: r.BankAccount,
			CityName:    r.CityName,
			Active:      !r.IsActive.Valid || r.IsActive.Bool,
		})
	}

	cities := make([]domain.City, 0, len(cityRows))
	for _, r := range cityRows {
		cities = append(cities, domain.City{
			ID:         r.CityID,
			RegionalID: r.RegionalID,
			Name:       r.Name,
		})
	}

	congregations := make([]domain.Congregation, 0, len(congregationRows))
	for _, r := range congregationRows {
		extraCents := 0
		if r.ExtraCents.Valid {
			extraCents = int(r.ExtraCents.Int64)
		}
		congregations = append(congregations, domain.Congregation{
			ID:         r.CongregationID,
			CityID:     r.CityID,
			RegionalID: r.RegionalID,
			Name:       r.Name,
			ShortCode:  r.ShortCode,
			SuffixCode: r.SuffixCode,
			TxIDBase:   r.TxIDBase,
			ExtraCents: extraCents,
			Active:     !r.IsActive.Valid || r.IsActive.Bool,
		})
	}

	purposes := make([]domain.Purpose, 0, len(purposeRows))
	for _, r := range purposeRows {
		purposes = append(purposes, domain.Purpose{
			ID:           r.PurposeID,
			Name:         r.Name,
			DisplayLabel: r.DisplayLabel,
			TxIDSuffix:   r.TxIDSuffix,
			Active:       !r.IsActive.Valid || r.IsActive.Bool,
		})
	}

	return domain.NewSnapshot(states, banks, regionals, cities, congregations, purposes), nil
}
