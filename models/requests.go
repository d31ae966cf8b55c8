package models

// BankRequest is the body of POST /v1/swift-codes.
type BankRequest struct {
	SwiftCode     string `json:"swiftCode" validate:"required,swiftcode"`
	BankName      string `json:"bankName" validate:"required,uppercase"`
	Address       string `json:"address" validate:"required"`
	IsHeadquarter bool   `json:"isHeadquarter"`
	CountryISO2   string `json:"countryISO2" validate:"required,countrycode"`
	CountryName   string `json:"countryName" validate:"required,uppercase"`
}

// ToBank maps the request onto the stored representation.
func (r BankRequest) ToBank() Bank {
	bank := Bank{
		SwiftCode:     r.SwiftCode,
		BankName:      r.BankName,
		Address:       r.Address,
		IsHeadquarter: r.IsHeadquarter,
		CountryISO2:   r.CountryISO2,
	}
	if !bank.IsHeadquarter {
		bank.HeadquarterSwiftCode = HeadquarterCodeFor(r.SwiftCode)
	}

	return bank
}

// ToCountry returns the country described by the request.
func (r BankRequest) ToCountry() Country {
	return Country{ISO2: r.CountryISO2, Name: r.CountryName}
}

// SwiftCodeQuery wraps a SWIFT code taken from a URL path.
type SwiftCodeQuery struct {
	SwiftCode string `json:"swiftCode" validate:"swiftcode"`
}

// CountryQuery wraps a country ISO2 code taken from a URL path.
type CountryQuery struct {
	CountryISO2 string `json:"countryISO2code" validate:"countrycode"`
}
