package model

import "time"

// MemberActivity is one settlement row produced by the POS aggregation
// queries. MType is "COLLECT" for point collection line items and
// "REDEEM" for point redemption payments.
type MemberActivity struct {
	GuestCheck  int64     `json:"guestcheck"`
	OrderID     int64     `json:"orderid"`
	Amount      float64   `json:"amount"`
	MemberRef   string    `json:"member_ref"`
	CreatedDate time.Time `json:"createddate"`
	MType       string    `json:"mtype"`
}
