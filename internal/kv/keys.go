package kv

// Storage keys. The names mirror the browser localStorage keys used by the
// web front-end so a migrated store stays readable.
const (
	KeyCart         = "hashtagbbq_cart"
	KeyReservations = "table_reservations"

	// Ambient order-flow keys, written by the navigation flow and treated
	// as opaque strings by everything else.
	KeyOrderType      = "orderType"
	KeySelectedOutlet = "selectedOutlet"
	KeyOrderMode      = "orderMode"

	KeySessionID = "sessionId"
)
