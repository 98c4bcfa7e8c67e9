package booking

type PriceCalculator interface {
	Calculate(hourlyRate Money, hours int, extras []ExtraTask) Pricing
}

type DefaultPriceCalculator struct {
	Currency string
}

func NewDefaultPriceCalculator(currency string) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{Currency: currency}
}

func (pc *DefaultPriceCalculator) Calculate(hourlyRate Money, hours int, extras []ExtraTask) Pricing {
	base := hourlyRate.Times(hours)
	var extrasTotal Money
	for _, task := range extras {
		extrasTotal += task.Price
	}
	return Pricing{
		BasePrice:       base,
		ExtraTasksPrice: extrasTotal,
		TotalPrice:      base + extrasTotal,
		Currency:        pc.Currency,
	}
}
