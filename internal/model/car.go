// Package model defines data structures for the voice showroom.
package model

// Car represents one vehicle in the dealership catalog.
type Car struct {
	ID           string   `json:"id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        int      `json:"price"`
	Mileage      int      `json:"mileage"`
	Color        string   `json:"color"`
	FuelType     string   `json:"fuelType"`
	Transmission string   `json:"transmission"`
	Drivetrain   string   `json:"drivetrain"`
	MPGCity      *int     `json:"mpgCity,omitempty"`
	MPGHighway   *int     `json:"mpgHighway,omitempty"`
	Features     []string `json:"features,omitempty"`
	Description  string   `json:"description,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	IsAvailable  bool     `json:"isAvailable"`
}
