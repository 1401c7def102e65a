package github

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type SearchRequest struct {
	Query  string    `form:"query" binding:"required"`
	Sort   SortOrder `form:"sort" binding:"omitempty,oneof=asc desc"`
	Ignore string    `form:"ignore"`
}

// Wire types mirror the GitHub search API payload; field names stay as
// GitHub sends them so the proxy is a drop-in for direct API consumers.

type RepositoryOwner struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

type Repository struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	FullName        string          `json:"full_name"`
	Owner           RepositoryOwner `json:"owner"`
	HTMLURL         string          `json:"html_url"`
	Description     *string         `json:"description"`
	StargazersCount int             `json:"stargazers_count"`
	ForksCount      int             `json:"forks_count"`
	OpenIssuesCount int             `json:"open_issues_count"`
	Language        *string         `json:"language"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

type SearchResponse struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []Repository `json:"items"`
}
