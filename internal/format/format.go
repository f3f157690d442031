// Package format renders metric values the way the dashboard shows them:
// Brazilian currency and digit grouping, with compact k/M suffixes for
// large values.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/idilsaglam/dashboard/internal/model"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// MetricValue formats value according to the metric type.
func MetricValue(value float64, kind string) string {
	switch kind {
	case model.MetricCurrency:
		if c, ok := compact(value); ok {
			return "R$ " + c
		}
		return "R$ " + ptBR.Sprint(number.Decimal(value, number.MaxFractionDigits(2)))
	case model.MetricPercentage:
		return strconv.FormatFloat(value, 'f', 1, 64) + "%"
	case model.MetricNumber:
		if c, ok := compact(value); ok {
			return c
		}
		return ptBR.Sprint(number.Decimal(value, number.MaxFractionDigits(3)))
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}

// compact shortens values of a thousand or more to one decimal with a
// decimal comma: 1260000 -> "1,3M", 3450 -> "3,5k".
func compact(value float64) (string, bool) {
	switch {
	case value >= 1_000_000:
		return decimalComma(value/1_000_000, 1) + "M", true
	case value >= 1_000:
		return decimalComma(value/1_000, 1) + "k", true
	}
	return "", false
}

func decimalComma(v float64, prec int) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', prec, 64), ".", ",", 1)
}

// Change formats a period change with an explicit sign: +12.5%, -2.0%.
func Change(change float64) string {
	sign := ""
	if change >= 0 {
		sign = "+"
	}
	return sign + strconv.FormatFloat(change, 'f', 1, 64) + "%"
}

// Positive reports whether a change should be shown as good news.
func Positive(change float64) bool { return change >= 0 }

// BRL formats an amount with pt-BR grouping: R$ 45.000.
func BRL(v float64) string {
	return "R$ " + ptBR.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// KiloBRL is the campaign axis label: R$ 45k.
func KiloBRL(v float64) string {
	return "R$ " + strconv.FormatFloat(v/1000, 'f', -1, 64) + "k"
}

// Percent is a share label: 60%.
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// PhaseStatus is the human label of an execution plan status.
func PhaseStatus(status string) string {
	if status == model.PhaseInProgress {
		return "Em Andamento"
	}
	return "Pendente"
}

// ActionBadge labels a priority action: anything not flagged as an alert
// is treated as critical.
func ActionBadge(status string) string {
	if status == model.KPIAlert {
		return "⚠️ Alerta"
	}
	return "🔴 Crítico"
}
