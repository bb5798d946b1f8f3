package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Gong130/Server-of-iNews/models"
	"github.com/gin-gonic/gin"
)

// newsLimit is how many items the list endpoint returns at most.
const newsLimit = 50

// NewsLister is the slice of the news store the handler needs.
type NewsLister interface {
	ListRecent(ctx context.Context, limit int) ([]models.News, error)
}

type newsResponse struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	CreatedAt *string `json:"created_at"`
	Content   string  `json:"content"`
}

// NewsHandler serves the protected news listing.
type NewsHandler struct {
	news   NewsLister
	logger *slog.Logger
}

func NewNewsHandler(news NewsLister, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{news: news, logger: logger}
}

// List handles GET /api/news. Auth is enforced by middleware before this
// runs.
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.news.ListRecent(c.Request.Context(), newsLimit)
	if err != nil {
		h.logger.Error("list news failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to fetch news"})
		return
	}

	result := make([]newsResponse, 0, len(items))
	for _, item := range items {
		var createdAt *string
		if !item.CreatedAt.IsZero() {
			s := item.CreatedAt.Format(time.RFC3339)
			createdAt = &s
		}
		result = append(result, newsResponse{
			ID:        item.ID,
			Title:     item.Title,
			Author:    item.Author,
			CreatedAt: createdAt,
			Content:   item.Content,
		})
	}

	c.JSON(http.StatusOK, result)
}
