package store

import "github.com/MKhiriev/go-swift-codes/models"

const (
	fieldID                   = "_id"
	fieldCountryISO2          = "countryISO2"
	fieldHeadquarterSwiftCode = "headquarterSwiftCode"
)

// bankDocument is a bank as stored in the banks collection, keyed by its
// SWIFT code.
type bankDocument struct {
	SwiftCode            string `bson:"_id"`
	BankName             string `bson:"bankName"`
	Address              string `bson:"address"`
	IsHeadquarter        bool   `bson:"isHeadquarter"`
	CountryISO2          string `bson:"countryISO2"`
	HeadquarterSwiftCode string `bson:"headquarterSwiftCode"`
}

// countryDocument is a country keyed by its ISO2 code.
type countryDocument struct {
	ISO2 string `bson:"_id"`
	Name string `bson:"countryName"`
}

func newBankDocument(bank models.Bank) bankDocument {
	return bankDocument{
		SwiftCode:            bank.SwiftCode,
		BankName:             bank.BankName,
		Address:              bank.Address,
		IsHeadquarter:        bank.IsHeadquarter,
		CountryISO2:          bank.CountryISO2,
		HeadquarterSwiftCode: bank.HeadquarterSwiftCode,
	}
}

func (d bankDocument) toBank() models.Bank {
	return models.Bank{
		SwiftCode:            d.SwiftCode,
		BankName:             d.BankName,
		Address:              d.Address,
		IsHeadquarter:        d.IsHeadquarter,
		CountryISO2:          d.CountryISO2,
		HeadquarterSwiftCode: d.HeadquarterSwiftCode,
	}
}

func newCountryDocument(country models.Country) countryDocument {
	return countryDocument{ISO2: country.ISO2, Name: country.Name}
}

func (d countryDocument) toCountry() models.Country {
	return models.Country{ISO2: d.ISO2, Name: d.Name}
}
