package domain

import "errors"

var ErrRacePackNotFound = errors.New("race pack not found")
var ErrInsufficientStock = errors.New("distributed quantity cannot exceed stock quantity")

// RacePack is an inventory line item handed out to participants of an event
// (shirts, medals, bibs, refreshments). DistributedQuantity must never exceed
// StockQuantity.
type RacePack struct {
	ID                  int    `json:"id"`
	EventID             int    `json:"eventId"`
	Name                string `json:"name"`
	SKU                 string `json:"sku"`
	Category            string `json:"category"`
	StockQuantity       int    `json:"stockQuantity"`
	DistributedQuantity int    `json:"distributedQuantity"`
}

// Remaining returns the undistributed stock.
func (p RacePack) Remaining() int {
	return p.StockQuantity - p.DistributedQuantity
}
