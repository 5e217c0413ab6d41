package models

import "time"

// ExpenseCategories is the fixed category enum, validated at the boundary.
var ExpenseCategories = []string{"flights", "hotels", "food", "activities", "transport", "other"}

// Currencies accepted by the expense form.
var Currencies = []string{"USD", "EUR", "GBP", "CZK", "PLN"}

func ValidCategory(c string) bool {
	for _, v := range ExpenseCategories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidCurrency(c string) bool {
	for _, v := range Currencies {
		if v == c {
			return true
		}
	}
	return false
}

type Expense struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TripID      uint      `gorm:"column:trip_id;not null;index" json:"trip_id"`
	Amount      float64   `gorm:"column:amount;not null" json:"amount"`
	Currency    string    `gorm:"column:currency;size:3;not null" json:"currency"`
	Category    string    `gorm:"column:category;size:20;not null" json:"category"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	Date        string    `gorm:"column:date;size:10;not null;index" json:"date"` // YYYY-MM-DD
	ReceiptURL  *string   `gorm:"column:receipt_url;size:255" json:"receipt_url,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}
