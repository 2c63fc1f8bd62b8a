package calendar

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PriceLabel форматирует стоимость cupo для отображения в локали tag
// Неизвестный код валюты выводится как есть после суммы
func PriceLabel(tag language.Tag, value float64, code string) string {
	p := message.NewPrinter(tag)

	unit, err := currency.ParseISO(code)
	if err != nil {
		amount := number.Decimal(value, number.Scale(2))
		if code == "" {
			return p.Sprint(amount)
		}
		return p.Sprintf("%v %s", amount, code)
	}

	scale, _ := currency.Standard.Rounding(unit)
	return p.Sprintf("%v %v", currency.Symbol(unit), number.Decimal(value, number.Scale(scale)))
}
