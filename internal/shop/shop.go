// Package shop sells cosmetic trinkets. Purchases validate and debit the
// balance and nothing else; no item changes any odds or payout.
package shop

import (
	"errors"

	"chamber/internal/player"
)

var ErrUnknownItem = errors.New("unknown shop item")

type Item struct {
	ID    int
	Name  string
	Price int64
}

var catalog = []Item{
	{ID: 1, Name: "Extra Life", Price: 50},
	{ID: 2, Name: "Bet Doubler", Price: 75},
	{ID: 3, Name: "Secret Cartridge", Price: 100},
	{ID: 4, Name: "Safety Shield", Price: 150},
	{ID: 5, Name: "Lucky Number", Price: 200},
	{ID: 6, Name: "Bonus Token", Price: 300},
	{ID: 7, Name: "Golden Ticket", Price: 500},
	{ID: 8, Name: "Crystal Ball", Price: 750},
	{ID: 9, Name: "XP Booster", Price: 1000},
	{ID: 10, Name: "Insurance Policy", Price: 1200},
	{ID: 11, Name: "VIP Subscription", Price: 2000},
	{ID: 12, Name: "Secret Map", Price: 5000},
	{ID: 13, Name: "Elite Status", Price: 10000},
	{ID: 14, Name: "Personal Assistant", Price: 15000},
}

// Catalog returns the fixed item list.
func Catalog() []Item {
	return append([]Item(nil), catalog...)
}

// Purchase debits the item's price from the balance. That is the entire
// effect; insufficient funds leave the state untouched.
func Purchase(s *player.State, id int) (Item, error) {
	for _, item := range catalog {
		if item.ID == id {
			if err := s.Debit(item.Price); err != nil {
				return Item{}, err
			}
			return item, nil
		}
	}
	return Item{}, ErrUnknownItem
}
