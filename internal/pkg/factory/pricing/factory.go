package pricing

import (
	"errors"
	"math"

	"service/internal/entities"
)

var ErrInvalidPrice = errors.New("invalid price")

// Engine рассчитывает разбивку стоимости при создании перевозки.
// Деньги — целые единицы валюты, округление half-up до нуля знаков.
type Engine struct {
	feeRate float64
}

func New(feeRate float64) *Engine {
	return &Engine{feeRate: feeRate}
}

func (e *Engine) Derive(requestedPrice float64) (entities.Pricing, error) {
	if requestedPrice < 0 {
		return entities.Pricing{}, ErrInvalidPrice
	}

	price := RoundMoney(requestedPrice)
	platformFee := RoundMoney(float64(price) * e.feeRate)
	profit := price - platformFee

	return entities.Pricing{
		Price:       price,
		PlatformFee: platformFee,
		Profit:      profit,
	}, nil
}

// RoundMoney — half-up до целых. Идемпотентно: повторное округление
// уже округленного значения его не меняет.
func RoundMoney(value float64) int64 {
	return int64(math.Floor(value + 0.5))
}
