// Package usecase implements smart money detection over live market data.
package usecase

import (
	"context"
	"fmt"
	"strings"

	quoteentity "tse_backend/internal/feature/quotes/domain/entity"
	"tse_backend/internal/feature/smartmoney/domain/entity"
)

// volumeSpikeFactor is how far above the 5-day average today's volume
// must be.
const volumeSpikeFactor = 1.25

// MarketWatchSource provides the live snapshot the scan runs over.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/brsapi or cache).
type MarketWatchSource interface {
	MarketWatch(ctx context.Context) ([]quoteentity.Quote, error)
}

// SmartMoneyUsecase evaluates quotes against the smart money conditions.
type SmartMoneyUsecase struct {
	market MarketWatchSource
}

// NewSmartMoneyUsecase creates a new SmartMoneyUsecase.
func NewSmartMoneyUsecase(market MarketWatchSource) *SmartMoneyUsecase {
	return &SmartMoneyUsecase{market: market}
}

// Evaluate applies the four smart money conditions to one quote:
// volume above 1.25x its 5-day average, average retail buy at least the
// average retail sell, last price holding the previous close, and a
// positive change percent.
func Evaluate(q quoteentity.Quote) entity.Result {
	buyCount := q.IndividualBuyCount
	if buyCount == 0 {
		buyCount = 1
	}
	sellCount := q.IndividualSellCount
	if sellCount == 0 {
		sellCount = 1
	}
	avgBuy := q.IndividualBuyVolume / float64(buyCount)
	avgSell := q.IndividualSellVolume / float64(sellCount)

	conditions := entity.Conditions{
		Volume: float64(q.Volume) > volumeSpikeFactor*q.AvgVolume5D,
		Flow:   avgBuy >= avgSell,
		Price:  q.Last >= q.PrevClose,
		Change: q.ChangePercent > 0,
	}

	return entity.Result{
		Symbol:        q.Symbol,
		Name:          q.Name,
		HasSmartMoney: conditions.Volume && conditions.Flow && conditions.Price && conditions.Change,
		Conditions:    conditions,
		Volume:        q.Volume,
		AvgVolume5D:   q.AvgVolume5D,
		Last:          q.Last,
		PrevClose:     q.PrevClose,
		ChangePercent: q.ChangePercent,
		AvgRetailBuy:  avgBuy,
		AvgRetailSell: avgSell,
	}
}

// Scan evaluates the whole market-watch snapshot and reports the symbols
// showing smart money activity.
func (u *SmartMoneyUsecase) Scan(ctx context.Context) (*entity.ScanReport, error) {
	quotes, err := u.market.MarketWatch(ctx)
	if err != nil {
		return nil, err
	}

	report := &entity.ScanReport{
		TotalSymbols: len(quotes),
		Matches:      []entity.Result{},
	}
	for _, q := range quotes {
		if result := Evaluate(q); result.HasSmartMoney {
			report.Matches = append(report.Matches, result)
		}
	}
	report.SmartMoneyCount = len(report.Matches)
	report.HasAnySmartMoney = report.SmartMoneyCount > 0
	return report, nil
}

// FormatTelegram renders a scan report as the Persian plain-text summary
// posted to Telegram channels.
func FormatTelegram(report *entity.ScanReport) string {
	var b strings.Builder

	if report.HasAnySmartMoney {
		symbols := make([]string, 0, len(report.Matches))
		for _, m := range report.Matches {
			symbols = append(symbols, m.Symbol)
		}

		b.WriteString("🧠 پول هوشمند شناسایی شد!\n\n")
		fmt.Fprintf(&b, "📊 %d سهم از %d سهم:\n", report.SmartMoneyCount, report.TotalSymbols)
		b.WriteString("🔥 " + strings.Join(symbols, ", ") + "\n\n")
		b.WriteString("📈 شرایط تأیید شده:\n")
		b.WriteString("✅ حجم بالای میانگین\n")
		b.WriteString("✅ خرید حقیقی قوی‌تر\n")
		b.WriteString("✅ قیمت مثبت\n")
	} else {
		b.WriteString("😴 هیچ پول هوشمندی شناسایی نشد\n\n")
		fmt.Fprintf(&b, "📊 %d سهم بررسی شد\n", report.TotalSymbols)
		b.WriteString("📉 شرایط تأیید نشد")
	}

	return b.String()
}
