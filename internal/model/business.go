package model

// Business is a lodging/business listing owned by a single owner.
type Business struct {
	ID            int64   `json:"id"`
	OwnerID       int64   `json:"owner_id"`
	Name          string  `json:"name"`
	StreetAddress string  `json:"street_address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	ZipCode       ZipCode `json:"zip_code"`
}

// Review is one user's rating of one business. A user reviews a business at most once.
type Review struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	BusinessID int64  `json:"business_id"`
	Stars      int    `json:"stars"`
	ReviewText string `json:"review_text"`
}
