package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/pageza/lista/backend/internal/i18n"
	"github.com/pageza/lista/backend/internal/metrics"
	"github.com/pageza/lista/backend/internal/middleware"
	"github.com/pageza/lista/backend/internal/service"
	"github.com/pageza/lista/backend/internal/types"
)

// minOCRTextLength is the shortest trimmed OCR text worth sending upstream
const minOCRTextLength = 10

// RecipeHandler handles OCR recipe extraction requests
type RecipeHandler struct {
	extractor  service.RecipeExtractor
	translator *i18n.Translator
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(extractor service.RecipeExtractor, translator *i18n.Translator) *RecipeHandler {
	return &RecipeHandler{
		extractor:  extractor,
		translator: translator,
	}
}

// RegisterRoutes registers both extraction endpoints. Every method is routed
// so that CORS headers and the 405 reply come from the handler chain.
func (h *RecipeHandler) RegisterRoutes(router gin.IRouter, extra ...gin.HandlerFunc) {
	macros := append([]gin.HandlerFunc{middleware.CORS(middleware.RecipeCORS)}, extra...)
	router.Any("/process-recipe", append(macros, h.ProcessRecipe)...)

	basic := append([]gin.HandlerFunc{middleware.CORS(middleware.BroadCORS)}, extra...)
	router.Any("/process-recipe-basic", append(basic, h.ProcessRecipeBasic)...)
}

// ProcessRecipe extracts title, ingredients and macros
func (h *RecipeHandler) ProcessRecipe(c *gin.Context) {
	h.process(c, service.VariantMacros)
}

// ProcessRecipeBasic extracts title and ingredients only
func (h *RecipeHandler) ProcessRecipeBasic(c *gin.Context) {
	h.process(c, service.VariantBasic)
}

func (h *RecipeHandler) process(c *gin.Context, variant service.Variant) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	lang := c.GetHeader("Accept-Language")

	var req types.ProcessRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil || utf8.RuneCountInString(strings.TrimSpace(req.OCRText)) < minOCRTextLength {
		metrics.ExtractionsTotal.WithLabelValues(string(variant), "invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": h.translator.Lookup(lang, i18n.MissingOCRText)})
		return
	}

	if !h.extractor.HasCredentials() {
		metrics.ExtractionsTotal.WithLabelValues(string(variant), "misconfigured").Inc()
		slog.Error("recipe extraction unavailable", "error", service.ErrMissingAPIKey, "requestID", c.GetString(middleware.RequestIDKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.translator.Lookup(lang, missingKeyMessage[variant])})
		return
	}

	result, err := h.extractor.ExtractRecipe(c.Request.Context(), req.OCRText, variant)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues(string(variant), failureLabel(err)).Inc()
		slog.Error("recipe extraction failed",
			"error", err,
			"variant", string(variant),
			"requestID", c.GetString(middleware.RequestIDKey),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   h.failureMessage(lang, variant, err),
		})
		return
	}

	metrics.ExtractionsTotal.WithLabelValues(string(variant), "success").Inc()

	var title any = h.translator.Lookup(lang, i18n.DefaultTitle)
	if result.HasTitle() {
		title = result.Title
	}
	ingredients := result.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	resp := gin.H{
		"success":     true,
		"title":       title,
		"ingredients": ingredients,
	}
	if variant == service.VariantMacros {
		// A nil RawMessage encodes as null.
		resp["macros"] = result.Macros
	}

	c.JSON(http.StatusOK, resp)
}

var (
	missingKeyMessage = map[service.Variant]string{
		service.VariantMacros: i18n.MissingAPIKey,
		service.VariantBasic:  i18n.MissingAPIKeyOnServer,
	}
	upstreamFailedMessage = map[service.Variant]string{
		service.VariantMacros: i18n.UpstreamFailed,
		service.VariantBasic:  i18n.UpstreamAPIFailed,
	}
)

// failureMessage is the error text returned to the caller. Provider messages
// pass through unchanged; an upstream failure without one is localized.
func (h *RecipeHandler) failureMessage(lang string, variant service.Variant, err error) string {
	var upstream *service.UpstreamError
	if errors.As(err, &upstream) && upstream.Message == "" {
		return h.translator.Lookup(lang, upstreamFailedMessage[variant])
	}
	return err.Error()
}

func failureLabel(err error) string {
	var upstream *service.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return "upstream_error"
	case errors.Is(err, service.ErrNoJSON), errors.Is(err, service.ErrEmptyResponse):
		return "bad_reply"
	case errors.Is(err, service.ErrMissingAPIKey):
		return "misconfigured"
	default:
		return "error"
	}
}
