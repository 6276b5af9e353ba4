package chain

import "time"

// Chain is the company owning brands.
type Chain struct {
	ID        int64     `json:"chainId"`
	Name      string    `json:"chainName"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
