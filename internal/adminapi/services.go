package adminapi

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"

	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/domain"
	"github.com/talkincode/backoffice/internal/webserver"
	"github.com/talkincode/backoffice/pkg/common"
	"github.com/talkincode/backoffice/pkg/tableview"
)

// PriceSummary aggregates the amounts of one currency
type PriceSummary struct {
	Currency string  `json:"currency"`
	Count    int     `json:"count"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
}

// registerServiceRoutes registers prices, service packs and bonus services
func registerServiceRoutes() {
	webserver.ApiGET("/prices/summary", SummaryPrices)

	mount("prices", screen[domain.Price]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.Price] { return c.Prices },
		prepare: func(v *domain.Price) {
			v.Title = strings.TrimSpace(v.Title)
			v.Currency = strings.ToUpper(strings.TrimSpace(v.Currency))
			v.Period = strings.ToLower(strings.TrimSpace(v.Period))
		},
	})

	mount("service-packs", screen[domain.ServicePack]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.ServicePack] { return c.ServicePacks },
		prepare: func(v *domain.ServicePack) {
			v.Title = strings.TrimSpace(v.Title)
			v.Prices = common.TrimAll(v.Prices)
			v.BonusServices = common.TrimAll(v.BonusServices)
		},
		unique:     func(v domain.ServicePack) string { return v.Title },
		uniqueCode: "SERVICE_PACK_EXISTS",
	})

	mount("bonus-services", screen[domain.BonusService]{
		pick: func(c *catalog.Catalog) *catalog.Resource[domain.BonusService] { return c.BonusServices },
		prepare: func(v *domain.BonusService) {
			v.Title = strings.TrimSpace(v.Title)
			v.Unit = strings.TrimSpace(v.Unit)
		},
	})
}

// SummaryPrices returns min/max/mean/median amounts per currency. The optional
// period and q parameters narrow the prices the same way the list does.
func SummaryPrices(c echo.Context) error {
	res := GetCatalog(c).Prices
	rows, err := res.Query(c.Request().Context(), tableview.Query{Filter: c.QueryParam("q")})
	if err != nil {
		return backendFail(c, err, res.API.Name, "Failed to query prices summary")
	}

	period := strings.ToLower(strings.TrimSpace(c.QueryParam("period")))
	amounts := map[string]stats.Float64Data{}
	for _, p := range rows {
		if period != "" && p.Period != period {
			continue
		}
		amounts[p.Currency] = append(amounts[p.Currency], p.Amount)
	}

	out := make([]PriceSummary, 0, len(amounts))
	for currency, data := range amounts {
		sum, err := summarizeAmounts(currency, data)
		if err != nil {
			return fail(c, http.StatusInternalServerError, "SUMMARY_FAILED", "Failed to summarize prices", err.Error())
		}
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return ok(c, out)
}

func summarizeAmounts(currency string, data stats.Float64Data) (PriceSummary, error) {
	s := PriceSummary{Currency: currency, Count: data.Len()}
	var err error
	if s.Min, err = data.Min(); err != nil {
		return s, err
	}
	if s.Max, err = data.Max(); err != nil {
		return s, err
	}
	if s.Mean, err = data.Mean(); err != nil {
		return s, err
	}
	if s.Median, err = data.Median(); err != nil {
		return s, err
	}
	return s, nil
}
