// Package charts renders backtest results as self-contained HTML pages.
package charts

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"tse_backend/internal/feature/backtest/domain/entity"
	candleentity "tse_backend/internal/feature/candles/domain/entity"
)

const (
	chartWidth  = "1280px"
	chartHeight = "560px"

	dateLayout = "2006-01-02"
)

// RenderReport writes an HTML page with the price candles, the fills the
// engine produced and the equity curve. Candles must be ordered oldest
// first, matching the report's equity curve.
func RenderReport(w io.Writer, candles []candleentity.Candle, report *entity.Report) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s %s", report.Symbol, report.Strategy)
	page.AddCharts(priceChart(candles, report), equityChart(report))
	return page.Render(w)
}

func priceChart(candles []candleentity.Candle, report *entity.Report) *charts.Kline {
	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s (%s)", report.Symbol, report.Interval),
			Subtitle: report.Strategy,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
			Theme:  types.ThemeInfographic,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: true,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
			Type:       "inside",
		}),
	)

	x := make([]string, 0, len(candles))
	y := make([]opts.KlineData, 0, len(candles))
	for _, c := range candles {
		x = append(x, c.Time.Format(dateLayout))
		y = append(y, opts.KlineData{Value: []float64{c.Open, c.Close, c.Low, c.High}})
	}

	kline.SetXAxis(x).
		AddSeries("Price", y).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color:        "#00da3c",
				Color0:       "#ec0000",
				BorderColor:  "#008F28",
				BorderColor0: "#8A0000",
			}),
		)

	kline.Overlap(tradeFlags(candles, report.Trades))
	return kline
}

// tradeFlags marks every fill on the price axis, buys pointing up and
// sells pointing down. Indices without a fill get an invisible point so
// the scatter stays aligned with the kline X axis.
func tradeFlags(candles []candleentity.Candle, trades []entity.Trade) *charts.Scatter {
	fills := make(map[time.Time]entity.Trade, len(trades))
	for _, tr := range trades {
		fills[tr.Time] = tr
	}

	x := make([]string, 0, len(candles))
	buys := make([]opts.ScatterData, 0, len(candles))
	sells := make([]opts.ScatterData, 0, len(candles))
	for _, c := range candles {
		x = append(x, c.Time.Format(dateLayout))

		tr, ok := fills[c.Time]
		if ok && tr.Side == "buy" {
			price, _ := tr.Price.Float64()
			buys = append(buys, opts.ScatterData{
				Value:      price,
				Symbol:     "triangle",
				SymbolSize: 14,
			})
		} else {
			buys = append(buys, opts.ScatterData{SymbolSize: 0})
		}
		if ok && tr.Side == "sell" {
			price, _ := tr.Price.Float64()
			sells = append(sells, opts.ScatterData{
				Value:        price,
				Symbol:       "triangle",
				SymbolSize:   14,
				SymbolRotate: 180,
			})
		} else {
			sells = append(sells, opts.ScatterData{SymbolSize: 0})
		}
	}

	scatter := charts.NewScatter()
	scatter.SetXAxis(x).
		AddSeries("Buys", buys, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#00da3c"})).
		AddSeries("Sells", sells, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ec0000"}))
	return scatter
}

func equityChart(report *entity.Report) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Equity",
			Subtitle: fmt.Sprintf("return %.2f%%, max drawdown %.2f%%, win rate %.1f%%",
				report.TotalReturnPct, report.MaxDrawdownPct, report.WinRate),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
			Theme:  types.ThemeInfographic,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: true,
		}),
	)

	x := make([]string, 0, len(report.EquityCurve))
	y := make([]opts.LineData, 0, len(report.EquityCurve))
	for _, p := range report.EquityCurve {
		equity, _ := p.Equity.Float64()
		x = append(x, p.Time.Format(dateLayout))
		y = append(y, opts.LineData{Value: equity})
	}

	line.SetXAxis(x).
		AddSeries("Equity", y).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))
	return line
}
