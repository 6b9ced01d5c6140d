package provider

import "errors"

var (
	ErrNoOrders = errors.New("no orders")
)
