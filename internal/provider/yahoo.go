package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockScout/internal/model"
)

// YahooProvider implements Provider using the Yahoo Finance public API.
type YahooProvider struct {
	Client *http.Client
}

// NewYahooProvider creates a new Yahoo Finance provider with optional proxy support.
func NewYahooProvider(proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooProvider{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// rangeForPeriod maps our history periods to Yahoo chart ranges.
// Yahoo has no "1wk" range; "5d" is the closest window.
var rangeForPeriod = map[string]string{
	Period1W:  "5d",
	Period1M:  "1mo",
	Period3M:  "3mo",
	Period6M:  "6mo",
	Period1Y:  "1y",
	PeriodYTD: "ytd",
	Period5Y:  "5y",
	PeriodMax: "max",
}

// yahooValue is Yahoo's {raw, fmt} wrapper around a numeric field.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
			Events struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
			} `json:"events"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooSummary is the response structure from the quoteSummary API.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				Symbol             string     `json:"symbol"`
				LongName           string     `json:"longName"`
				ShortName          string     `json:"shortName"`
				RegularMarketPrice yahooValue `json:"regularMarketPrice"`
				MarketCap          yahooValue `json:"marketCap"`
			} `json:"price"`
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			SummaryDetail struct {
				TrailingPE       yahooValue `json:"trailingPE"`
				ForwardPE        yahooValue `json:"forwardPE"`
				DividendYield    yahooValue `json:"dividendYield"`
				Beta             yahooValue `json:"beta"`
				FiftyTwoWeekHigh yahooValue `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow  yahooValue `json:"fiftyTwoWeekLow"`
				AverageVolume    yahooValue `json:"averageVolume"`
			} `json:"summaryDetail"`
			FinancialData struct {
				CurrentPrice      yahooValue `json:"currentPrice"`
				RevenueGrowth     yahooValue `json:"revenueGrowth"`
				ProfitMargins     yahooValue `json:"profitMargins"`
				OperatingMargins  yahooValue `json:"operatingMargins"`
				ReturnOnEquity    yahooValue `json:"returnOnEquity"`
				ReturnOnAssets    yahooValue `json:"returnOnAssets"`
				DebtToEquity      yahooValue `json:"debtToEquity"`
				TotalDebt         yahooValue `json:"totalDebt"`
				CurrentRatio      yahooValue `json:"currentRatio"`
				FreeCashflow      yahooValue `json:"freeCashflow"`
				RecommendationKey string     `json:"recommendationKey"`
			} `json:"financialData"`
			DefaultKeyStatistics struct {
				PegRatio    yahooValue `json:"pegRatio"`
				PriceToBook yahooValue `json:"priceToBook"`
				TotalAssets yahooValue `json:"totalAssets"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (p *YahooProvider) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// FetchQuote retrieves the fundamentals snapshot for a symbol.
func (p *YahooProvider) FetchQuote(symbol string) (*model.RawFinancials, error) {
	endpoint := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=price,assetProfile,summaryDetail,financialData,defaultKeyStatistics",
		url.PathEscape(symbol))

	body, err := p.get(endpoint)
	if err != nil {
		return nil, err
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("yahoo decode summary: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}

	r := summary.QuoteSummary.Result[0]
	quote := &model.RawFinancials{
		Symbol:    r.Price.Symbol,
		LongName:  r.Price.LongName,
		ShortName: r.Price.ShortName,
		Sector:    r.AssetProfile.Sector,
		Industry:  r.AssetProfile.Industry,

		CurrentPrice:     r.FinancialData.CurrentPrice.Raw,
		MarketCap:        r.Price.MarketCap.Raw,
		TrailingPE:       r.SummaryDetail.TrailingPE.Raw,
		ForwardPE:        r.SummaryDetail.ForwardPE.Raw,
		PEGRatio:         r.DefaultKeyStatistics.PegRatio.Raw,
		PriceToBook:      r.DefaultKeyStatistics.PriceToBook.Raw,
		RevenueGrowth:    r.FinancialData.RevenueGrowth.Raw,
		ProfitMargins:    r.FinancialData.ProfitMargins.Raw,
		OperatingMargins: r.FinancialData.OperatingMargins.Raw,
		ReturnOnEquity:   r.FinancialData.ReturnOnEquity.Raw,
		ReturnOnAssets:   r.FinancialData.ReturnOnAssets.Raw,
		DebtToEquity:     r.FinancialData.DebtToEquity.Raw,
		TotalDebt:        r.FinancialData.TotalDebt.Raw,
		TotalAssets:      r.DefaultKeyStatistics.TotalAssets.Raw,
		CurrentRatio:     r.FinancialData.CurrentRatio.Raw,
		FreeCashflow:     r.FinancialData.FreeCashflow.Raw,
		DividendYield:    r.SummaryDetail.DividendYield.Raw,
		Beta:             r.SummaryDetail.Beta.Raw,
		FiftyTwoWeekHigh: r.SummaryDetail.FiftyTwoWeekHigh.Raw,
		FiftyTwoWeekLow:  r.SummaryDetail.FiftyTwoWeekLow.Raw,
		AverageVolume:    r.SummaryDetail.AverageVolume.Raw,

		Recommendation: r.FinancialData.RecommendationKey,
	}
	if quote.Symbol == "" {
		return nil, fmt.Errorf("yahoo: empty symbol for %s", symbol)
	}
	if quote.CurrentPrice == nil {
		quote.CurrentPrice = r.Price.RegularMarketPrice.Raw
	}
	return quote, nil
}

func (p *YahooProvider) fetchChart(symbol, interval, rng string, withDividends bool) (*yahooChart, error) {
	endpoint := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=%s&range=%s",
		url.PathEscape(symbol), interval, rng)
	if withDividends {
		endpoint += "&events=div"
	}

	body, err := p.get(endpoint)
	if err != nil {
		return nil, err
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no chart data for %s", symbol)
	}
	return &chart, nil
}

// FetchHistory retrieves daily OHLCV bars for the requested lookback period.
func (p *YahooProvider) FetchHistory(symbol, period string) ([]model.OHLCV, error) {
	rng, ok := rangeForPeriod[period]
	if !ok {
		return nil, fmt.Errorf("yahoo: unsupported period %q", period)
	}

	chart, err := p.fetchChart(symbol, "1d", rng, false)
	if err != nil {
		return nil, err
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: empty history for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.OHLCV, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

// FetchDividends retrieves the full dividend event history, oldest first.
func (p *YahooProvider) FetchDividends(symbol string) ([]model.Dividend, error) {
	chart, err := p.fetchChart(symbol, "1d", "max", true)
	if err != nil {
		return nil, err
	}

	events := chart.Chart.Result[0].Events.Dividends
	divs := make([]model.Dividend, 0, len(events))
	for _, d := range events {
		divs = append(divs, model.Dividend{
			Time:   time.Unix(d.Date, 0),
			Amount: d.Amount,
		})
	}

	sort.Slice(divs, func(i, j int) bool { return divs[i].Time.Before(divs[j].Time) })
	return divs, nil
}
