package brand

import "time"

const MaxNameLength = 50

// Brand is the stored row. ChainID always references an existing chain.
type Brand struct {
	ID        int64
	Name      string
	ChainID   int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// View is a brand resolved with its chain name.
type View struct {
	ID        int64     `json:"brandId"`
	Name      string    `json:"brandName"`
	ChainID   int64     `json:"chainId"`
	ChainName string    `json:"chainName"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input carries the caller supplied fields of create and update.
// A nil IsActive leaves the stored flag untouched on update and is ignored on create.
type Input struct {
	Name     string
	ChainID  int64
	IsActive *bool
}
