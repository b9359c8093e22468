package bigquery

import (
	"context"
	"errors"
	"testing"
	"time"

	bigquerylib "cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	"github.com/gmfurtado/pixcards/internal/domain"
)

// mockHierarchyRepository serves fixed rows for snapshot tests.
type mockHierarchyRepository struct {
	states        []StateRow
	banks         []BankRow
	regionals     []RegionalRow
	cities        []CityRow
	congregations []CongregationRow
	purposes      []PurposeRow

	failOn string
}

var errMock = errors.New("table unavailable")

func (m *mockHierarchyRepository) ListStates(ctx context.Context) ([]StateRow, error) {
	if m.failOn == "states" {
		return nil, errMock
	}
	return m.states, nil
}

func (m *mockHierarchyRepository) ListBanks(ctx context.Context) ([]BankRow, error) {
	if m.failOn == "banks" {
		return nil, errMock
	}
	return m.banks, nil
}

func (m *mockHierarchyRepository) ListActiveRegionals(ctx context.Context) ([]RegionalRow, error) {
	if m.failOn == "regionals" {
		return nil, errMock
	}
	return m.regionals, nil
}

func (m *mockHierarchyRepository) ListCities(ctx context.Context) ([]CityRow, error) {
	if m.failOn == "cities" {
		return nil, errMock
	}
	return m.cities, nil
}

func (m *mockHierarchyRepository) ListActiveCongregations(ctx context.Context) ([]CongregationRow, error) {
	if m.failOn == "congregations" {
		return nil, errMock
	}
	return m.congregations, nil
}

func (m *mockHierarchyRepository) ListActivePurposes(ctx context.Context) ([]PurposeRow, error) {
	if m.failOn == "purposes" {
		return nil, errMock
	}
	return m.purposes, nil
}

func fixtureRepo() *mockHierarchyRepository {
	return &mockHierarchyRepository{
		states: []StateRow{
			{StateID: "to", Name: "Tocantins", UF: "TO", Code: "28"},
		},
		banks: []BankRow{
			{BankID: "341", Code: "341", Name: "Itaú", BranchMask: "0000", AccountMask: "00000-0"},
		},
		regionals: []RegionalRow{
			{
				RegionalID: "reg-porto", StateID: "to", Name: "Regional Porto Nacional",
				CNPJ: "11222333000181", OwnerName: "CCB REGIONAL PORTO",
				BankID: "341", BankBranch: "1234", BankAccount: "123456",
				CityName: "Porto Nacional",
				IsActive: bigquerylib.NullBool{Bool: true, Valid: true},
			},
		},
		cities: []CityRow{
			{CityID: "porto-nacional", RegionalID: "reg-porto", Name: "Porto Nacional"},
		},
		congregations: []CongregationRow{
			{
				CongregationID: "jardim-brasilia", CityID: "porto-nacional", RegionalID: "reg-porto",
				Name: "Jardim Brasília", ShortCode: "JB", SuffixCode: "0059", TxIDBase: "BR280059",
				ExtraCents: bigquerylib.NullInt64{Int64: 59, Valid: true},
			},
		},
		purposes: []PurposeRow{
			{PurposeID: "purp-geral", Name: "Coleta Geral", DisplayLabel: "COLETA GERAL", TxIDSuffix: "G01"},
		},
	}
}

func TestLoadSnapshot(t *testing.T) {
	snap, err := LoadSnapshot(context.Background(), fixtureRepo())
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}

	if len(snap.States) != 1 || len(snap.Banks) != 1 || len(snap.Regionals) != 1 {
		t.Fatalf("snapshot sizes: states=%d banks=%d regionals=%d",
			len(snap.States), len(snap.Banks), len(snap.Regionals))
	}

	reg := snap.Regionals[0]
	if reg.ID != "reg-porto" || reg.CNPJ != "11222333000181" || !reg.Active {
		t.Errorf("regional = %+v", reg)
	}

	cong := snap.Congregations[0]
	if cong.TxIDBase != "BR280059" || cong.ExtraCents != 59 {
		t.Errorf("congregation = %+v", cong)
	}

	p := domain.Resolve(snap, domain.Selection{
		StateID:        "to",
		RegionalID:     "reg-porto",
		CityID:         "porto-nacional",
		CongregationID: "jardim-brasilia",
		PurposeID:      "purp-geral",
	})
	if p == nil {
		t.Fatal("loaded snapshot does not resolve its own fixture selection")
	}
	if p.TxID != "BR280059G01" {
		t.Errorf("TxID = %q, want %q", p.TxID, "BR280059G01")
	}
}

func TestLoadSnapshot_SkipsFutureActivation(t *testing.T) {
	repo := fixtureRepo()
	future := civil.DateOf(time.Now().AddDate(0, 0, 7))
	repo.regionals = append(repo.regionals, RegionalRow{
		RegionalID: "reg-future", StateID: "to", Name: "Futura",
		CNPJ: "03493231000172", OwnerName: "FUTURA", BankID: "341",
		ActivatedDate: bigquerylib.NullDate{Date: future, Valid: true},
	})

	snap, err := LoadSnapshot(context.Background(), repo)
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}

	if len(snap.Regionals) != 1 {
		t.Fatalf("got %d regionals, want the future one skipped", len(snap.Regionals))
	}
	if snap.Regionals[0].ID != "reg-porto" {
		t.Errorf("kept regional = %q", snap.Regionals[0].ID)
	}
}

func TestLoadSnapshot_PastActivationKept(t *testing.T) {
	repo := fixtureRepo()
	past := civil.DateOf(time.Now().AddDate(0, 0, -7))
	repo.regionals[0].ActivatedDate = bigquerylib.NullDate{Date: past, Valid: true}

	snap, err := LoadSnapshot(context.Background(), repo)
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}
	if len(snap.Regionals) != 1 {
		t.Errorf("got %d regionals, want 1", len(snap.Regionals))
	}
}

func TestLoadSnapshot_TableErrors(t *testing.T) {
	for _, table := range []string{"states", "banks", "regionals", "cities", "congregations", "purposes"} {
		t.Run(table, func(t *testing.T) {
			repo := fixtureRepo()
			repo.failOn = table
			if _, err := LoadSnapshot(context.Background(), repo); !errors.Is(err, errMock) {
				t.Errorf("LoadSnapshot() error = %v, want wrapped table error", err)
			}
		})
	}
}
