package models

// ReducedBankResponse is the short form of a bank used in lists.
type ReducedBankResponse struct {
	SwiftCode     string `json:"swiftCode"`
	BankName      string `json:"bankName"`
	Address       string `json:"address"`
	IsHeadquarter bool   `json:"isHeadquarter"`
	CountryISO2   string `json:"countryISO2"`
}

// BankResponse is returned by GET /v1/swift-codes/{swiftCode}.
// Branches is only present for headquarters that have branches.
type BankResponse struct {
	SwiftCode     string                `json:"swiftCode"`
	BankName      string                `json:"bankName,omitempty"`
	Address       string                `json:"address,omitempty"`
	IsHeadquarter bool                  `json:"isHeadquarter"`
	CountryISO2   string                `json:"countryISO2,omitempty"`
	CountryName   string                `json:"countryName,omitempty"`
	Branches      []ReducedBankResponse `json:"branches,omitempty"`
}

// CountryBanksResponse is returned by GET /v1/swift-codes/country/{countryISO2code}.
type CountryBanksResponse struct {
	CountryISO2 string                `json:"countryISO2"`
	CountryName string                `json:"countryName"`
	SwiftCodes  []ReducedBankResponse `json:"swiftCodes"`
}

// MessageResponse is the body of successful mutating requests.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewReducedBankResponse maps a stored bank to its list representation.
func NewReducedBankResponse(bank Bank) ReducedBankResponse {
	return ReducedBankResponse{
		SwiftCode:     bank.SwiftCode,
		BankName:      bank.BankName,
		Address:       bank.Address,
		IsHeadquarter: bank.IsHeadquarter,
		CountryISO2:   bank.CountryISO2,
	}
}

// NewBankResponse maps a stored bank, its country name and its branches to
// the detailed representation.
func NewBankResponse(bank Bank, countryName string, branches []Bank) BankResponse {
	response := BankResponse{
		SwiftCode:     bank.SwiftCode,
		BankName:      bank.BankName,
		Address:       bank.Address,
		IsHeadquarter: bank.IsHeadquarter,
		CountryISO2:   bank.CountryISO2,
		CountryName:   countryName,
	}

	for _, branch := range branches {
		response.Branches = append(response.Branches, NewReducedBankResponse(branch))
	}

	return response
}
