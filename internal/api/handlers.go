package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"newsroom/internal/domain"
)

type handler struct {
	moderation Moderation
}

type articleList struct {
	Articles []articleResponse `json:"articles"`
	Total    int               `json:"total"`
}

func queryLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("limit must be a non-negative integer: %w", domain.ErrInvalidInput)
	}
	return n, nil
}

func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return fmt.Errorf("malformed request body: %w", domain.ErrInvalidInput)
	}
	return nil
}

func (h *handler) pendingArticles(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return err
	}
	articles, total, err := h.moderation.PendingArticles(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articleList{Articles: toResponses(articles), Total: total})
}

func (h *handler) noSummaryArticles(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return err
	}
	articles, err := h.moderation.NoSummaryArticles(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articleList{Articles: toResponses(articles), Total: len(articles)})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *handler) updateStatus(c echo.Context) error {
	var req statusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	a, err := h.moderation.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(*a))
}

type summarizeRequest struct {
	ArticleIDs []string `json:"articleIds"`
}

func (h *handler) bulkSummarize(c echo.Context) error {
	var req summarizeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.moderation.BulkSummarize(c.Request().Context(), req.ArticleIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *handler) generateThumbnail(c echo.Context) error {
	res, err := h.moderation.GenerateThumbnail(c.Request().Context(), c.Param("id"), c.QueryParam("mode"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStageResponse(res))
}

func (h *handler) translate(c echo.Context) error {
	res, err := h.moderation.TranslateArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStageResponse(res))
}

func (h *handler) revertTitle(c echo.Context) error {
	res, err := h.moderation.RevertTitle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStageResponse(res))
}

type titleRequest struct {
	Title string `json:"title"`
}

func (h *handler) setTitle(c echo.Context) error {
	var req titleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	a, err := h.moderation.SetTitle(c.Request().Context(), c.Param("id"), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(*a))
}

type imageRequest struct {
	Image string `json:"image"`
}

func (h *handler) setImage(c echo.Context) error {
	var req imageRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	a, err := h.moderation.SetImage(c.Request().Context(), c.Param("id"), req.Image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(*a))
}

func (h *handler) triggerCollection(c echo.Context) error {
	job, err := h.moderation.TriggerCollection(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, job)
}

func (h *handler) collectionStatus(c echo.Context) error {
	st, err := h.moderation.CollectionStatus(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (h *handler) triggerTrendReport(c echo.Context) error {
	job, err := h.moderation.TriggerTrendReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, job)
}

func (h *handler) latestTrendReport(c echo.Context) error {
	r, err := h.moderation.LatestTrendReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *handler) migrateStatus(c echo.Context) error {
	n, err := h.moderation.MigrateLegacyStatus(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"updated": n})
}
