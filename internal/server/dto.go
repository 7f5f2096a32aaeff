package server

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/investcalc/calculators/internal/config"
	"github.com/investcalc/calculators/internal/domain"
	"github.com/investcalc/calculators/pkg/dateutil"
)

// projectionRequest accepts numbers either as JSON numbers or as strings,
// so form fields can be posted unchanged.
type projectionRequest struct {
	Product   string          `json:"product"`
	Amount    json.RawMessage `json:"amount"`
	Principal json.RawMessage `json:"principal"`
	Rate      json.RawMessage `json:"rate"`
	Years     json.RawMessage `json:"years"`
	StartDate string          `json:"start_date"`
}

func (req projectionRequest) toInput() (domain.ProjectionInput, error) {
	amount := rawValue(req.Amount)
	if amount == "" {
		amount = rawValue(req.Principal)
	}
	input, err := config.ParseInput(config.FormValues{
		Product: req.Product,
		Amount:  amount,
		Rate:    rawValue(req.Rate),
		Years:   rawValue(req.Years),
	})
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	if s := strings.TrimSpace(req.StartDate); s != "" {
		d, err := dateutil.ParseDate(s)
		if err != nil {
			return domain.ProjectionInput{}, domain.InvalidInput("start_date", err.Error())
		}
		input.StartDate = &d
	}
	return input, nil
}

func rawValue(m json.RawMessage) string {
	m = bytes.TrimSpace(m)
	if len(m) == 0 || string(m) == "null" {
		return ""
	}
	if m[0] == '"' {
		if s, err := strconv.Unquote(string(m)); err == nil {
			return s
		}
	}
	return string(m)
}

type inputResponse struct {
	Product   domain.Product `json:"product"`
	Amount    string         `json:"amount"`
	Rate      string         `json:"rate"`
	Years     int            `json:"years"`
	StartDate string         `json:"start_date,omitempty"`
}

type pointResponse struct {
	Year       int    `json:"year"`
	Label      string `json:"label"`
	Investment string `json:"investment"`
	Returns    string `json:"returns"`
	Total      string `json:"total"`
	Date       string `json:"date,omitempty"`
}

type resultResponse struct {
	Product         domain.Product  `json:"product"`
	Mode            domain.Mode     `json:"mode"`
	Input           inputResponse   `json:"input"`
	TotalInvestment string          `json:"total_investment"`
	TotalReturns    string          `json:"total_returns"`
	MaturityValue   string          `json:"maturity_value"`
	YearSeries      []pointResponse `json:"year_series"`
	MaturityDate    string          `json:"maturity_date,omitempty"`
	Divisor         string          `json:"divisor"`
	Cached          bool            `json:"cached"`
}

func newResultResponse(r *domain.ProjectionResult, cached bool) resultResponse {
	resp := resultResponse{
		Product: r.Product,
		Mode:    r.Mode,
		Input: inputResponse{
			Product: r.Input.Product,
			Amount:  r.Input.Amount.String(),
			Rate:    r.Input.AnnualRatePercent.String(),
			Years:   r.Input.Years,
		},
		TotalInvestment: r.TotalInvestment.StringFixed(0),
		TotalReturns:    r.TotalReturns.StringFixed(0),
		MaturityValue:   r.MaturityValue.StringFixed(0),
		YearSeries:      make([]pointResponse, 0, len(r.YearSeries)),
		Divisor:         r.Divisor.String(),
		Cached:          cached,
	}
	if r.Input.StartDate != nil {
		resp.Input.StartDate = r.Input.StartDate.Format(dateutil.DateLayout)
	}
	if r.MaturityDate != nil {
		resp.MaturityDate = r.MaturityDate.Format(dateutil.DateLayout)
	}
	for _, yp := range r.YearSeries {
		p := pointResponse{
			Year:       yp.Year,
			Label:      yp.Label,
			Investment: yp.Investment.StringFixed(2),
			Returns:    yp.Returns.StringFixed(2),
			Total:      yp.Total().StringFixed(2),
		}
		if yp.Date != nil {
			p.Date = yp.Date.Format(dateutil.DateLayout)
		}
		resp.YearSeries = append(resp.YearSeries, p)
	}
	return resp
}

type productResponse struct {
	Product domain.Product `json:"product"`
	Mode    domain.Mode    `json:"mode"`
	Labels  domain.Labels  `json:"labels"`
}

type errorBody struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}
