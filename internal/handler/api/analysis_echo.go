package api

import (
	"net/http"
	"time"

	models "PairLens/internal/domain/models"
	"PairLens/internal/service/ratelimit"
	"PairLens/internal/usecase"
	xhttp "PairLens/pkg/http"
	xlogger "PairLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisEchoHandler exposes the analysis endpoints over Echo.
type AnalysisEchoHandler struct {
	logger     *xlogger.Logger
	unitroot   *usecase.UnitRootUseCase
	pairs      *usecase.PairsUseCase
	limiter    *ratelimit.Limiter
	rateCap    float64
	rateRefill float64
}

func NewAnalysisEchoHandler(
	logger *xlogger.Logger,
	unitroot *usecase.UnitRootUseCase,
	pairs *usecase.PairsUseCase,
	rateCap, rateRefill float64,
) *AnalysisEchoHandler {
	return &AnalysisEchoHandler{
		logger:     logger,
		unitroot:   unitroot,
		pairs:      pairs,
		limiter:    ratelimit.New(),
		rateCap:    rateCap,
		rateRefill: rateRefill,
	}
}

func (h *AnalysisEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/unitroot", h.UnitRoot)
	g.POST("/pairs", h.Pairs)
	g.GET("/health", h.Health)
}

func (h *AnalysisEchoHandler) UnitRoot(c echo.Context) error {
	if !h.allow(c) {
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limit exceeded"))
	}

	req := &models.UnitRootRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	start := time.Now()
	res, err := h.unitroot.Run(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("unitroot usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	h.logger.Debug("unitroot computed",
		xlogger.Duration("elapsed", time.Since(start)),
		xlogger.Int("lags", req.Lags))
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) Pairs(c echo.Context) error {
	if !h.allow(c) {
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limit exceeded"))
	}

	req := &models.PairsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	start := time.Now()
	res, err := h.pairs.Run(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("pairs usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	h.logger.Debug("pairs computed",
		xlogger.Duration("elapsed", time.Since(start)),
		xlogger.Int("window", req.Window),
		xlogger.Int("records", len(res.Results)))
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// allow applies the per-client token bucket. A zero capacity disables
// limiting.
func (h *AnalysisEchoHandler) allow(c echo.Context) bool {
	if h.rateCap <= 0 {
		return true
	}
	return h.limiter.Allow(c.RealIP(), h.rateCap, h.rateRefill)
}
