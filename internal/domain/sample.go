package domain

// SampleSnapshot returns a small seeded hierarchy for offline use and tests.
// Production deployments load the snapshot from the reference tables instead
// (see internal/infra/bigquery).
func SampleSnapshot() *Snapshot {
	states := []State{
		{ID: "sp", Name: "São Paulo", UF: "SP", Code: "10"},
		{ID: "to", Name: "Tocantins", UF: "TO", Code: "28"},
	}

	banks := []Bank{
		{ID: "001", Code: "001", Name: "Banco do Brasil", BranchMask: "0000-0", AccountMask: "00.000-0"},
		{ID: "341", Code: "341", Name: "Itaú", BranchMask: "0000", AccountMask: "00000-0"},
		{ID: "104", Code: "104", Name: "Caixa Econômica", BranchMask: "0000", AccountMask: "000.000.000-0"},
		{ID: "237", Code: "237", Name: "Bradesco", BranchMask: "0000", AccountMask: "0000000-0"},
	}

	regionals := []Regional{
		{
			ID: "reg-sp-capital", StateID: "sp", Name: "Capital SP",
			CNPJ: "03493231000172", OwnerName: "CONGREGACAO CRISTA NO BRASIL",
			BankID: "001", BankBranch: "11177", BankAccount: "417416",
			CityName: "São Paulo", Active: true,
		},
		{
			ID: "reg-porto", StateID: "to", Name: "Regional Porto Nacional",
			CNPJ: "11222333000181", OwnerName: "CCB REGIONAL PORTO",
			BankID: "341", BankBranch: "1234", BankAccount: "123456",
			CityName: "Porto Nacional", Active: true,
		},
	}

	cities := []City{
		{ID: "sao-paulo", RegionalID: "reg-sp-capital", Name: "São Paulo"},
		{ID: "porto-nacional", RegionalID: "reg-porto", Name: "Porto Nacional"},
	}

	congregations := []Congregation{
		{
			ID: "bras", CityID: "sao-paulo", RegionalID: "reg-sp-capital",
			Name: "Brás", ShortCode: "BS", SuffixCode: "0001",
			TxIDBase: "BR100001", Active: true,
		},
		{
			ID: "jardim-brasilia", CityID: "porto-nacional", RegionalID: "reg-porto",
			Name: "Jardim Brasília", ShortCode: "JB", SuffixCode: "0059",
			TxIDBase: "BR280059", Active: true,
		},
	}

	purposes := []Purpose{
		{ID: "purp-geral", Name: "Coleta Geral", DisplayLabel: "COLETA GERAL", TxIDSuffix: "G01", Active: true},
		{ID: "purp-const", Name: "Construção", DisplayLabel: "CONSTRUCAO", TxIDSuffix: "C01", Active: true},
		{ID: "purp-biblico", Name: "Fundo Bíblico", DisplayLabel: "FUNDO BIBLICO", TxIDSuffix: "F01", Active: true},
	}

	return NewSnapshot(states, banks, regionals, cities, congregations, purposes)
}
