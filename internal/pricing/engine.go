package pricing

import (
	"github.com/shopspring/decimal"
)

const (
	// ChargePlaces точность списания: минимальная единица розничной валюты.
	ChargePlaces int32 = 2
	// RatePlaces точность отображения ставок за 1000.
	RatePlaces int32 = 4
)

var perThousand = decimal.NewFromInt(1000)

type Quote struct {
	WholesaleRate decimal.Decimal
	RetailRate    decimal.Decimal
	Quantity      int64
	TotalCharge   decimal.Decimal
	ActualCost    decimal.Decimal
	Profit        decimal.Decimal
}

// Price считает списание, себестоимость и прибыль заказа. Промежуточные значения не округляются,
// округление списания (half-up до ChargePlaces) выполняется один раз в конце. Прибыль может быть
// отрицательной, это не ошибка.
func Price(wholesalePer1000, retailPer1000 decimal.Decimal, quantity int64) Quote {
	q := decimal.NewFromInt(quantity)

	totalCharge := retailPer1000.Mul(q).Div(perThousand).Round(ChargePlaces)
	actualCost := wholesalePer1000.Mul(q).Div(perThousand)

	return Quote{
		WholesaleRate: wholesalePer1000,
		RetailRate:    retailPer1000,
		Quantity:      quantity,
		TotalCharge:   totalCharge,
		ActualCost:    actualCost,
		Profit:        totalCharge.Sub(actualCost),
	}
}
