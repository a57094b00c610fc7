package domain

import (
	"strings"
)

// Closed vocabularies for categorized fields. Unrecognized values collapse
// into the "other" bucket instead of being rejected, so a remote row with a
// category written by a newer client version still parses.

// Receipt categories.
const (
	CategoryGroceries     = "groceries"
	CategoryRestaurants   = "restaurants"
	CategoryFuel          = "fuel"
	CategoryTransport     = "transport"
	CategoryHealth        = "health"
	CategoryClothing      = "clothing"
	CategoryElectronics   = "electronics"
	CategoryHousehold     = "household"
	CategoryEntertainment = "entertainment"
	CategoryOther         = "other"
)

var receiptCategories = map[string]bool{
	CategoryGroceries:     true,
	CategoryRestaurants:   true,
	CategoryFuel:          true,
	CategoryTransport:     true,
	CategoryHealth:        true,
	CategoryClothing:      true,
	CategoryElectronics:   true,
	CategoryHousehold:     true,
	CategoryEntertainment: true,
}

// Device categories.
const (
	DeviceCategoryMajorAppliance = "major_appliance"
	DeviceCategorySmallAppliance = "small_appliance"
	DeviceCategoryElectronics    = "electronics"
	DeviceCategoryComputer       = "computer"
	DeviceCategoryPhone          = "phone"
	DeviceCategoryTool           = "tool"
	DeviceCategoryOther          = "other"
)

var deviceCategories = map[string]bool{
	DeviceCategoryMajorAppliance: true,
	DeviceCategorySmallAppliance: true,
	DeviceCategoryElectronics:    true,
	DeviceCategoryComputer:       true,
	DeviceCategoryPhone:          true,
	DeviceCategoryTool:           true,
}

// Bill types and statuses. These are the known values the UI renders, but
// the bill parser does not enforce them; see HouseholdBill.
const (
	BillTypeElectricity = "electricity"
	BillTypeWater       = "water"
	BillTypeGas         = "gas"
	BillTypeHeating     = "heating"
	BillTypeInternet    = "internet"
	BillTypePhone       = "phone"
	BillTypeWaste       = "waste"
	BillTypeRent        = "rent"
	BillTypeOther       = "other"

	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
)

// Consumption units.
const (
	UnitKilowattHour = "kWh"
	UnitCubicMeter   = "m3"
	UnitLiter        = "L"
	UnitGigajoule    = "GJ"
	UnitOther        = "other"
)

var consumptionUnits = map[string]string{
	"kwh": UnitKilowattHour,
	"m3":  UnitCubicMeter,
	"m³":  UnitCubicMeter,
	"l":   UnitLiter,
	"lit": UnitLiter,
	"gj":  UnitGigajoule,
}

// NormalizeReceiptCategory maps a remote category value onto the closed
// receipt vocabulary. Unknown or empty values map to "other".
func NormalizeReceiptCategory(raw string) string {
	c := strings.ToLower(strings.TrimSpace(raw))
	if receiptCategories[c] {
		return c
	}
	return CategoryOther
}

// NormalizeDeviceCategory maps a remote category value onto the closed
// device vocabulary. Unknown or empty values map to "other".
func NormalizeDeviceCategory(raw string) string {
	c := strings.ToLower(strings.TrimSpace(raw))
	if deviceCategories[c] {
		return c
	}
	return DeviceCategoryOther
}

// NormalizeConsumptionUnit maps a remote unit string onto the recognized
// consumption units. An unrecognized unit maps to "other" rather than
// invalidating the reading.
func NormalizeConsumptionUnit(raw string) string {
	if u, ok := consumptionUnits[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return u
	}
	return UnitOther
}
