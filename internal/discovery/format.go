package discovery

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"workspark/internal/domain/job"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	symbolRupee  = "₹"
	symbolDollar = "$"
)

// CurrencySymbol maps INR to the rupee sign and everything else to "$".
func CurrencySymbol(currency string) string {
	if currency == "INR" {
		return symbolRupee
	}
	return symbolDollar
}

// FormatBudget renders a job's budget for display. Hourly amounts are
// printed as-is; other budget types are thousands-grouped.
func FormatBudget(j job.Job) string {
	sym := CurrencySymbol(j.Currency)
	lo, hasMin := amount(j.BudgetMin)
	hi, hasMax := amount(j.BudgetMax)

	if j.BudgetType == job.BudgetHourly {
		switch {
		case hasMin && hasMax:
			return fmt.Sprintf("%s%s-%s/hr", sym, plain(lo), plain(hi))
		case hasMin:
			return fmt.Sprintf("%s%s+/hr", sym, plain(lo))
		}
		return "Hourly rate TBD"
	}

	switch {
	case hasMin && hasMax:
		return fmt.Sprintf("%s%s-%s%s", sym, grouped(lo), sym, grouped(hi))
	case hasMin:
		return fmt.Sprintf("%s%s+", sym, grouped(lo))
	}
	return "Budget TBD"
}

// FormatAmount renders a rounded, grouped amount with its currency symbol.
func FormatAmount(currency string, v float64) string {
	return CurrencySymbol(currency) + grouped(math.Round(v))
}

// TimeAgo renders the coarse age of ts relative to now. Every tier
// truncates; there is no month or year tier.
func TimeAgo(ts, now time.Time) string {
	hours := int64(now.Sub(ts) / time.Hour)
	if hours < 1 {
		return "Just posted"
	}
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}
	return fmt.Sprintf("%dw ago", days/7)
}

func amount(v *float64) (float64, bool) {
	if v == nil || *v == 0 {
		return 0, false
	}
	return *v, true
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func grouped(v float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}
