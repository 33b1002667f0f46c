package entity

type OrderType int

const (
	TypeDineIn   OrderType = 1
	TypeTakeaway OrderType = 2
	TypeDelivery OrderType = 3
	TypeWhatsapp OrderType = 4
)
