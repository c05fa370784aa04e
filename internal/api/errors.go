package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"newsroom/internal/domain"
)

const (
	codeNotFound = "not_found"
	codeBadInput = "bad_input"
	codeConflict = "conflict"
	codeInternal = "internal"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrArticleNotFound), errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNothingToRevert):
		return http.StatusBadRequest, codeBadInput
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrCollectionInProgress):
		return http.StatusConflict, codeConflict
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch {
		case he.Code == http.StatusNotFound:
			return he.Code, codeNotFound
		case he.Code < http.StatusInternalServerError:
			return he.Code, codeBadInput
		}
	}
	return http.StatusInternalServerError, codeInternal
}

func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code := classify(err)
		detail := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if msg, ok := he.Message.(string); ok {
				detail = msg
			}
		}
		if status == http.StatusInternalServerError {
			logger.Error("request failed", "error", err, "path", c.Path())
			detail = http.StatusText(status)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, errorBody{Error: errorDetail{Code: code, Detail: detail}})
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}
