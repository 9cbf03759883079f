package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/domain"
	"go-currency-converter/exchange"
	"go-currency-converter/format"
	"go-currency-converter/pair"
	"go-currency-converter/rates"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service   exchange.Service
	Formatter *format.Formatter
	Catalog   *rates.Catalog

	// From and To the pair used when a request names no currency
	From domain.Currency
	To   domain.Currency

	Logger log.Logger
	router *http.ServeMux
}

// NewServer constructs a Server with routes registered
func NewServer(s exchange.Service, f *format.Formatter, c *rates.Catalog, logger log.Logger) *Server {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	server := &Server{
		Service:   s,
		Formatter: f,
		Catalog:   c,
		From:      rates.DefaultFrom,
		To:        rates.DefaultTo,
		Logger:    logger,
		router:    http.NewServeMux(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/api/rate", s.rate())
	s.router.Handle("/api/currencies", s.currencies())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// controller a fresh pair controller, one per request
func (s *Server) controller(from domain.Currency, to domain.Currency) *pair.Controller {
	if from == "" {
		from = s.From
	}
	if to == "" {
		to = s.To
	}
	return pair.New(s.Service, s.Formatter, from, to, s.Logger)
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency domain.Currency
		ToCurrency   domain.Currency
		// Amount raw field text, anything that is not a number converts as 0
		Amount string
		Side   domain.Side
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Result string `json:"result"`
		Rate   string `json:"rate"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			s.error(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		bytes, err := io.ReadAll(r.Body)
		if err != nil {
			s.error(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			level.Info(s.Logger).Log("msg", "rejected convert request", "err", err)
			s.error(rw, http.StatusBadRequest, "invalid json")
			return
		}

		side := request.Side
		if side == domain.None {
			side = domain.From
		}

		c := s.controller(request.FromCurrency, request.ToCurrency)
		c.Focus(side)
		c.Edit(side, request.Amount)

		s.encode(rw, response{
			Result: c.Text(side.Other()),
			Rate:   c.RateLabel(),
		})
	}
}

// rate produces HTTP handler for the reference-rate label
func (s *Server) rate() http.HandlerFunc {
	type response struct {
		Rate string `json:"rate"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			s.error(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		q := r.URL.Query()
		c := s.controller(domain.Currency(q.Get("from")), domain.Currency(q.Get("to")))
		s.encode(rw, response{Rate: c.RateLabel()})
	}
}

// currencies produces HTTP handler listing selectable currencies
func (s *Server) currencies() http.HandlerFunc {
	type currency struct {
		Label string          `json:"label"`
		Code  domain.Currency `json:"code"`
		Rate  domain.Rate     `json:"rate"`
	}

	type response struct {
		Currencies []currency `json:"currencies"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			s.error(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var out response
		for _, e := range s.Catalog.Entries() {
			out.Currencies = append(out.Currencies, currency{Label: e.Label, Code: e.Code, Rate: e.Rate})
		}
		s.encode(rw, out)
	}
}

func (s *Server) encode(rw http.ResponseWriter, v interface{}) {
	enc := json.NewEncoder(rw)
	err := enc.Encode(v)
	if err != nil {
		level.Error(s.Logger).Log("msg", "failed json encoding", "err", err)
		s.error(rw, http.StatusInternalServerError, "failed json encoding")
	}
}

func (s *Server) error(rw http.ResponseWriter, status int, msg string) {
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(map[string]string{"error": msg})
}
