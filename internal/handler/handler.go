package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"projection-engine/internal/engine"
	"projection-engine/internal/model"
	"projection-engine/internal/predictions"
)

type Handler struct {
	engine *engine.Engine
	log    *zap.SugaredLogger
}

func New(e *engine.Engine, log *zap.SugaredLogger) *Handler {
	return &Handler{engine: e, log: log}
}

// Handle routes a request. It is a fasthttp.RequestHandler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/projections":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.handleProjection(ctx)
	case "/predictions":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.handlePredictions(ctx)
	case "/healthz":
		ctx.SetContentType("text/plain")
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleProjection(ctx *fasthttp.RequestCtx) {
	var req model.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Prediction == "" && req.Target == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Either prediction or target is required")
		return
	}

	resp := h.engine.Process(&req)

	meta := resp.CalculationMetadata
	h.log.Infow("projection calculated",
		"calculation_id", meta.CalculationID,
		"tenant_id", meta.TenantID,
		"prediction", req.Prediction,
		"outcome", meta.CalculationOutcome,
		"duration_ms", meta.CalculationDurationMs,
	)

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handlePredictions(ctx *fasthttp.RequestCtx) {
	out := []model.Prediction{}
	switch c := h.engine.Catalog.(type) {
	case *predictions.Store:
		out = c.All()
	case predictions.Catalog:
		for _, name := range c.Names() {
			if p, ok := c.Lookup(name); ok {
				out = append(out, p)
			}
		}
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
