package main

import (
	"context"
	"net/http"
	"strconv"

	"financial-dashboard/internal/finance"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// server holds the dependencies of the HTTP handlers
type server struct {
	svc           *finance.Service
	db            pinger
	cache         *responseCache
	log           *zap.Logger
	strictFilters bool
}

// routes registers every endpoint on r
func (s *server) routes(r *gin.Engine) {
	r.GET("/health", s.healthCheck)

	api := r.Group("/api/financeiro")
	api.GET("/kpis", s.getKPIs)
	api.GET("/graficos/categorias", s.getCategoryChart)
	api.GET("/graficos/mensal", s.getMonthlyChart)
	api.GET("/categorias", s.getCategories)
	api.GET("/transacoes", s.getTransactions)
	api.POST("/transacoes", s.addTransaction)
}

// healthCheck handles the health check endpoint
func (s *server) healthCheck(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "financial-dashboard",
	})
}

// filterFromQuery reads the dashboard filter from the query string. With
// strict filters enabled an invalid filter aborts the request with 400.
func (s *server) filterFromQuery(c *gin.Context) (finance.Filter, bool) {
	f := finance.Normalize(finance.RawFilter{
		Start:      c.Query("dataInicio"),
		End:        c.Query("dataFim"),
		Period:     c.Query("periodo"),
		Categories: c.Query("categorias"),
	})
	if s.strictFilters {
		if err := f.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return f, false
		}
	}
	return f, true
}

// getKPIs returns the KPI summary for the requested filter
func (s *server) getKPIs(c *gin.Context) {
	f, ok := s.filterFromQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	key := cacheKey("kpis", f, "")

	var summary finance.KPISummary
	if s.cache.get(ctx, key, &summary) {
		c.JSON(http.StatusOK, summary)
		return
	}

	summary, err := s.svc.KPISummary(ctx, f)
	if err != nil {
		s.log.Warn("Serving zeroed KPI summary", zap.Error(err))
	} else {
		s.cache.set(ctx, key, summary)
	}

	c.JSON(http.StatusOK, summary)
}

// getCategoryChart returns the expense distribution by category
func (s *server) getCategoryChart(c *gin.Context) {
	f, ok := s.filterFromQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	key := cacheKey("categorias", f, "")

	var series finance.ChartSeries
	if s.cache.get(ctx, key, &series) {
		c.JSON(http.StatusOK, series)
		return
	}

	series, err := s.svc.CategoryDistribution(ctx, f)
	if err != nil {
		s.log.Warn("Serving empty category chart", zap.Error(err))
	} else {
		s.cache.set(ctx, key, series)
	}

	c.JSON(http.StatusOK, series)
}

// getMonthlyChart returns revenue vs expense for the last N months
func (s *server) getMonthlyChart(c *gin.Context) {
	f, ok := s.filterFromQuery(c)
	if !ok {
		return
	}

	months := finance.DefaultMonths
	if raw := c.Query("meses"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			if s.strictFilters {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meses"})
				return
			}
		} else {
			months = n
		}
	}

	ctx := c.Request.Context()
	key := cacheKey("mensal", f, "&meses="+strconv.Itoa(months))

	var series finance.ChartSeries
	if s.cache.get(ctx, key, &series) {
		c.JSON(http.StatusOK, series)
		return
	}

	series, err := s.svc.MonthlySeries(ctx, months, f)
	if err != nil {
		s.log.Warn("Serving empty monthly chart", zap.Error(err))
	} else {
		s.cache.set(ctx, key, series)
	}

	c.JSON(http.StatusOK, series)
}

// getTransactions lists the transactions matching the filter, newest first
func (s *server) getTransactions(c *gin.Context) {
	f, ok := s.filterFromQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	key := cacheKey("transacoes", f, "")

	var transactions []finance.Transaction
	if s.cache.get(ctx, key, &transactions) {
		c.JSON(http.StatusOK, transactions)
		return
	}

	transactions, err := s.svc.Transactions(ctx, f)
	if err != nil {
		s.log.Warn("Serving empty transaction list", zap.Error(err))
	} else {
		s.cache.set(ctx, key, transactions)
	}

	c.JSON(http.StatusOK, transactions)
}

// getCategories retrieves all categories
func (s *server) getCategories(c *gin.Context) {
	categories, err := s.svc.ListCategories(c.Request.Context())
	if err != nil {
		s.log.Warn("Serving empty category list", zap.Error(err))
	}

	c.JSON(http.StatusOK, categories)
}

// addTransaction records a new transaction and adjusts its account balance
func (s *server) addTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	t, err := req.toNewTransaction()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if !s.svc.RecordTransaction(c.Request.Context(), t) {
		c.JSON(http.StatusInternalServerError, RecordResponse{Success: false})
		return
	}

	c.JSON(http.StatusCreated, RecordResponse{Success: true})
}
