package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"ig-advisor-go/internal/logger"
	"ig-advisor-go/internal/processor"
	"ig-advisor-go/internal/types"
	"ig-advisor-go/internal/validation"
)

const maxBodyBytes = 1 << 20

// accountService is the part of processor.Service the handlers use.
type accountService interface {
	BuildPrompt(ctx context.Context, userID string, params types.PromptParams) (processor.PromptResult, error)
	Advise(ctx context.Context, userID string, params types.PromptParams) (processor.AdviceResult, error)
}

func newMux(svc accountService, log *logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		log.WithRequest(r, logger.RequestID(r)).Debug("health check")
		fmt.Fprint(w, "ok")
	})

	mux.HandleFunc("POST /account/prompt-input", func(w http.ResponseWriter, r *http.Request) {
		reqLog, userID, params, ok := decodeRequest(w, r, log, "prompt-input")
		if !ok {
			return
		}
		res, err := svc.BuildPrompt(r.Context(), userID, params)
		if err != nil {
			reqLog.WithError(err).Error("build prompt failed")
			writeError(w, reqLog, http.StatusInternalServerError, err.Error())
			return
		}
		reqLog.WithField("data_warnings", len(res.DataWarnings)).Info("prompt input built")
		writeJSON(w, reqLog, http.StatusOK, res)
	})

	mux.HandleFunc("POST /account/advice", func(w http.ResponseWriter, r *http.Request) {
		reqLog, userID, params, ok := decodeRequest(w, r, log, "advice")
		if !ok {
			return
		}
		start := time.Now()
		res, err := svc.Advise(r.Context(), userID, params)
		reqLog = reqLog.WithField("duration_ms", time.Since(start).Milliseconds())
		switch {
		case errors.Is(err, processor.ErrAdvice):
			reqLog.WithError(err).Warn("advisor failed, returning prompt only")
			writeJSON(w, reqLog, http.StatusBadGateway, res)
		case err != nil:
			reqLog.WithError(err).Error("advice failed")
			writeError(w, reqLog, http.StatusInternalServerError, err.Error())
		default:
			reqLog.Info("advice generated")
			writeJSON(w, reqLog, http.StatusOK, res)
		}
	})

	return mux
}

// decodeRequest reads and validates the body. An empty body means all
// defaults. On failure it has already written the response.
func decodeRequest(w http.ResponseWriter, r *http.Request, log *logger.Logger, handler string) (*logrus.Entry, string, types.PromptParams, bool) {
	reqID := logger.RequestID(r)
	w.Header().Set(logger.RequestIDHeader, reqID)
	reqLog := log.WithRequest(r, reqID).WithField("handler", handler)
	reqLog.Info("request received")

	var req validation.PromptRequest
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err == nil && len(bytes.TrimSpace(body)) > 0 {
		err = json.Unmarshal(body, &req)
	}
	if err != nil {
		reqLog.WithError(err).Warn("invalid request body")
		writeError(w, reqLog, http.StatusBadRequest, "invalid JSON body")
		return reqLog, "", types.PromptParams{}, false
	}

	params, err := req.Params()
	if err != nil {
		reqLog.WithError(err).Warn("request rejected")
		writeError(w, reqLog, http.StatusBadRequest, err.Error())
		return reqLog, "", types.PromptParams{}, false
	}
	reqLog = reqLog.WithFields(logrus.Fields{
		"window_days": params.WindowDays,
		"primary":     params.Primary,
		"mode":        params.Mode,
	})
	return reqLog, req.UserID, params, true
}

func writeJSON(w http.ResponseWriter, log *logrus.Entry, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, log *logrus.Entry, status int, msg string) {
	writeJSON(w, log, status, map[string]string{"error": msg})
}
