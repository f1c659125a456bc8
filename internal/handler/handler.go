package handler

import (
	"errors"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"slas-calculator/internal/metrics"
	"slas-calculator/internal/model"
	"slas-calculator/internal/pricing"
	"slas-calculator/internal/quoteclient"
	"slas-calculator/web"
)

const (
	metricsPath = "/metrics"
	healthPath  = "/healthz"
)

type Handler struct {
	engine  *pricing.Engine
	metrics *metrics.Metrics
	logger  *zap.Logger
	assets  fasthttp.RequestHandler
}

// New wires the pricing endpoint. staticDir, when set, serves wasm_exec.js,
// calculator.wasm and any other asset next to the embedded page.
func New(engine *pricing.Engine, m *metrics.Metrics, logger *zap.Logger, staticDir string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{engine: engine, metrics: m, logger: logger}
	if staticDir != "" {
		fs := &fasthttp.FS{Root: staticDir, Compress: true}
		h.assets = fs.NewRequestHandler()
	}
	return h
}

// Router dispatches by path.
func (h *Handler) Router() fasthttp.RequestHandler {
	metricsHandler := h.metrics.Handler()

	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case quoteclient.QuotePath:
			h.HandleQuote(ctx)
		case metricsPath:
			metricsHandler(ctx)
		case healthPath:
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString("ok")
		case "/", "/index.html":
			ctx.SetContentType("text/html; charset=utf-8")
			ctx.SetBody(web.IndexHTML)
		default:
			if h.assets == nil {
				ctx.NotFound()
				return
			}
			h.assets(ctx)
		}
	}
}

func (h *Handler) HandleQuote(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodPost)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	req, err := model.DecodeCalculationRequest(ctx.PostBody())
	if err != nil {
		var missing *model.MissingFieldError
		if errors.As(err, &missing) {
			h.metrics.ObserveQuote(metrics.OutcomeRejected, 0)
			writeError(ctx, fasthttp.StatusBadRequest, model.MsgMissingFields+strings.Join(missing.Fields, ", "))
			return
		}
		h.metrics.ObserveQuote(metrics.OutcomeMalformed, 0)
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	q, err := h.engine.Quote(req)
	if err != nil {
		var invalid *pricing.InvalidDataError
		if errors.As(err, &invalid) {
			h.metrics.ObserveQuote(metrics.OutcomeRejected, 0)
			writeError(ctx, fasthttp.StatusBadRequest, invalid.Message)
			return
		}
		h.logger.Error("quote failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, model.MsgQuoteFailed)
		return
	}

	h.metrics.ObserveQuote(metrics.OutcomeSuccess, q.Duration)
	h.logger.Info("quote served",
		zap.String("calculation_id", q.CalculationID),
		zap.Time("started_at", q.StartedAt),
		zap.Duration("duration", q.Duration))

	body, err := json.Marshal(q.Result)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, model.MsgQuoteFailed)
		return
	}
	ctx.Response.Header.Set("X-Calculation-Id", q.CalculationID)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
