// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Region string

const (
	RegionNorth   Region = "North"
	RegionSouth   Region = "South"
	RegionEast    Region = "East"
	RegionWest    Region = "West"
	RegionCentral Region = "Central"
)

var Regions = []Region{RegionNorth, RegionSouth, RegionEast, RegionWest, RegionCentral}

func (r Region) IsValid() bool {
	for _, region := range Regions {
		if r == region {
			return true
		}
	}
	return false
}

type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "Individual"
	CustomerTypeBusiness   CustomerType = "Business"
	CustomerTypeEnterprise CustomerType = "Enterprise"
)

var CustomerTypes = []CustomerType{CustomerTypeIndividual, CustomerTypeBusiness, CustomerTypeEnterprise}

func (t CustomerType) IsValid() bool {
	for _, customerType := range CustomerTypes {
		if t == customerType {
			return true
		}
	}
	return false
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type Customer struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Region    Region       `json:"region"`
	Type      CustomerType `json:"type"`
	Phone     string       `json:"phone,omitempty"`
	Address   Address      `json:"address"`
	CreatedAt time.Time    `json:"createdAt"`
}
