// Package response defines the JSON bodies the HTTP delivery puts on the wire.
package response

import (
	"net/http"
	"time"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TokenTypeBearer is the token type reported alongside every issued pair.
const TokenTypeBearer = "bearer"

// MessageResponse is the body for plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body every failed request carries. Detail is only
// populated when debug mode is on.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// AccountResponse is the wire view of an account.
type AccountResponse struct {
	AccountID    uuid.UUID `json:"accountId"`
	Username     string    `json:"username"`
	EmailAddress string    `json:"emailAddress"`
	AccountRole  string    `json:"accountRole"`
	ProfileImage string    `json:"profileImage"`
}

// AccountDetailResponse extends AccountResponse with the management fields the
// account list and profile surfaces expose.
type AccountDetailResponse struct {
	AccountResponse

	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// LoginResponse is the success body of a login.
type LoginResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	TokenType    string          `json:"tokenType"`
	User         AccountResponse `json:"user"`
}

// TokenPairResponse is the success body of a refresh exchange.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// ArticleResponse is the wire view of an article.
type ArticleResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary"`
	Body        string     `json:"body"`
	CoverImage  string     `json:"coverImage"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ProjectResponse is the wire view of a portfolio project.
type ProjectResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Summary      string    `json:"summary"`
	Description  string    `json:"description"`
	CoverImage   string    `json:"coverImage"`
	RepoURL      string    `json:"repoUrl"`
	LiveURL      string    `json:"liveUrl"`
	DisplayOrder int       `json:"displayOrder"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OfferingResponse is the wire view of a service offering.
type OfferingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InquiryResponse is the wire view of a contact inquiry.
type InquiryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Handled   bool      `json:"handled"`
	CreatedAt time.Time `json:"createdAt"`
}

// UploadTicketResponse is the body of a minted upload ticket.
type UploadTicketResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
}

// DownloadURLResponse resolves one object key to a signed GET URL.
type DownloadURLResponse struct {
	Key         string `json:"key"`
	DownloadURL string `json:"downloadUrl"`
}

// DownloadURLsResponse resolves a batch of object keys to signed GET URLs.
type DownloadURLsResponse struct {
	URLs map[string]string `json:"urls"`
}

// NewAccountResponse maps an account entity to its wire view.
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		AccountID:    account.ID,
		Username:     account.Username,
		EmailAddress: account.Email,
		AccountRole:  string(account.Role),
		ProfileImage: account.ProfileImageKey,
	}
}

// NewAccountDetailResponse maps an account entity to its management wire view.
func NewAccountDetailResponse(account *entity.Account) AccountDetailResponse {
	return AccountDetailResponse{
		AccountResponse: NewAccountResponse(account),
		IsActive:        account.IsActive,
		LastLoginAt:     account.LastLoginAt,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
}

// NewAccountDetailResponses maps a slice of account entities.
func NewAccountDetailResponses(accounts []*entity.Account) []AccountDetailResponse {
	out := make([]AccountDetailResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, NewAccountDetailResponse(account))
	}

	return out
}

// NewArticleResponse maps an article entity to its wire view.
func NewArticleResponse(article *entity.Article) ArticleResponse {
	return ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Slug:        article.Slug,
		Summary:     article.Summary,
		Body:        article.Body,
		CoverImage:  article.CoverImageKey,
		Status:      article.Status.String(),
		PublishedAt: article.PublishedAt,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}

// NewArticleResponses maps a slice of article entities.
func NewArticleResponses(articles []*entity.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		out = append(out, NewArticleResponse(article))
	}

	return out
}

// NewProjectResponse maps a project entity to its wire view.
func NewProjectResponse(project *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:           project.ID,
		Title:        project.Title,
		Slug:         project.Slug,
		Summary:      project.Summary,
		Description:  project.Description,
		CoverImage:   project.CoverImageKey,
		RepoURL:      project.RepoURL,
		LiveURL:      project.LiveURL,
		DisplayOrder: project.DisplayOrder,
		Featured:     project.Featured,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}

// NewProjectResponses maps a slice of project entities.
func NewProjectResponses(projects []*entity.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		out = append(out, NewProjectResponse(project))
	}

	return out
}

// NewOfferingResponse maps an offering entity to its wire view.
func NewOfferingResponse(offering *entity.Offering) OfferingResponse {
	return OfferingResponse{
		ID:          offering.ID,
		Title:       offering.Title,
		Slug:        offering.Slug,
		Summary:     offering.Summary,
		Description: offering.Description,
		PriceCents:  offering.PriceCents,
		Currency:    offering.Currency,
		IsActive:    offering.IsActive,
		CreatedAt:   offering.CreatedAt,
		UpdatedAt:   offering.UpdatedAt,
	}
}

// NewOfferingResponses maps a slice of offering entities.
func NewOfferingResponses(offerings []*entity.Offering) []OfferingResponse {
	out := make([]OfferingResponse, 0, len(offerings))
	for _, offering := range offerings {
		out = append(out, NewOfferingResponse(offering))
	}

	return out
}

// NewInquiryResponse maps an inquiry entity to its wire view.
func NewInquiryResponse(inquiry *entity.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        inquiry.ID,
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Subject:   inquiry.Subject,
		Body:      inquiry.Body,
		Handled:   inquiry.Handled,
		CreatedAt: inquiry.CreatedAt,
	}
}

// NewInquiryResponses maps a slice of inquiry entities.
func NewInquiryResponses(inquiries []*entity.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		out = append(out, NewInquiryResponse(inquiry))
	}

	return out
}

// Message writes a plain acknowledgement body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error writes an error body without detail.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{Message: message})
}

// ErrorWithDetail writes an error body carrying a detail field. The error
// middleware only passes a detail through in debug mode.
func ErrorWithDetail(c echo.Context, statusCode int, message string, detail string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{Message: message, Detail: detail})
}

// BindingError 400 error for malformed request bodies
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}
