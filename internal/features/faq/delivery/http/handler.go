package http

import (
	"context"
	"html"
	"html/template"
	"net/http"
	"strings"

	apperrors "speakyz-backend/internal/common/errors"
	"speakyz-backend/internal/common/logger"
	"speakyz-backend/internal/features/faq/models"
	"speakyz-backend/internal/features/faq/service"

	"github.com/gin-gonic/gin"
)

// HealthChecker проверяет доступность хранилища.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type FAQHandler struct {
	service service.FAQService
	botURL  string
	store   HealthChecker // nil, когда хранилище не настроено
	tmpl    *template.Template
}

func NewFAQHandler(service service.FAQService, botURL string, store HealthChecker) *FAQHandler {
	return &FAQHandler{
		service: service,
		botURL:  botURL,
		store:   store,
		tmpl:    template.Must(template.New("faq").Parse(faqPageTemplate)),
	}
}

func (h *FAQHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.page)
	router.GET("/health", h.health)
	router.GET("/api/faq", h.list)
}

type faqItemView struct {
	Question string
	Answer   template.HTML
}

type faqPageView struct {
	FAQs   []faqItemView
	BotURL string
}

// page рендерит страницу FAQ. При недоступном хранилище страница
// отдается с пустым списком, а не ошибкой.
func (h *FAQHandler) page(c *gin.Context) {
	entries, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load FAQ entries for page")
		entries = nil
	}

	view := faqPageView{BotURL: h.botURL}
	for _, entry := range entries {
		view.FAQs = append(view.FAQs, faqItemView{
			Question: entry.Question,
			Answer:   renderAnswer(entry.Answer),
		})
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(c.Writer, view); err != nil {
		logger.Error().Err(err).Msg("Failed to render FAQ page")
	}
}

func (h *FAQHandler) health(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  "speakyz-faq",
			"database": "not_configured",
		})
		return
	}

	if err := h.store.HealthCheck(c.Request.Context()); err != nil {
		logger.Error().Err(err).Msg("Database health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"service":  "speakyz-faq",
			"database": "down",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "speakyz-faq",
		"database": "up",
	})
}

func (h *FAQHandler) list(c *gin.Context) {
	entries, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		if apperrors.IsStoreUnavailable(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not available"})
			return
		}
		logger.Error().Err(err).Msg("Failed to list FAQ entries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	faqs := make([]models.FAQResponse, 0, len(entries))
	for _, entry := range entries {
		faqs = append(faqs, models.ToResponse(entry))
	}

	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

// renderAnswer экранирует текст ответа и переводит переносы строк в <br>.
func renderAnswer(answer string) template.HTML {
	escaped := html.EscapeString(answer)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
