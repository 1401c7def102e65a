package github

import (
	"errors"
	"net/http"

	"githubsearch/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	githubGroup := protected.Group("/github")
	{
		githubGroup.GET("/search", h.SearchRepositories)
	}
}

// SearchRepositories proxies the GitHub repository search.
// @Summary		Search repositories
// @Description	Queries the GitHub search API, drops repositories whose name contains the ignore string and sorts the remainder by name.
// @Tags		GitHub
// @Security	BearerAuth
// @Param		query	query	string	true	"Search query"
// @Param		sort	query	string	false	"Sort by name: asc or desc"
// @Param		ignore	query	string	false	"Drop repositories whose name contains this string"
// @Success		200	{object}	map[string]interface{}	"Filtered and sorted search results"
// @Failure		401	{object}	map[string]interface{}	"Missing or invalid access token"
// @Failure		429	{object}	map[string]interface{}	"GitHub rate limit exceeded"
// @Failure		503	{object}	map[string]interface{}	"GitHub unavailable"
// @Router		/github/search [GET]
func (h *Handler) SearchRepositories(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.service.SearchRepositories(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, "GITHUB_API_RATE_LIMIT_EXCEEDED", "GitHub API rate limit exceeded")
		case errors.Is(err, ErrUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "GITHUB_API_UNAVAILABLE", "GitHub API unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "GITHUB_SEARCH_FAILED", "Failed to search repositories")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
