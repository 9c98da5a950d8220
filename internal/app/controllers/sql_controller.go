package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniadmin/internal/app/catalog"
	"github.com/yigit/uniadmin/internal/app/models/dto"
	"github.com/yigit/uniadmin/internal/app/services"
	"github.com/yigit/uniadmin/internal/middleware"
	"github.com/yigit/uniadmin/internal/pkg/apperrors"
)

// SQLController backs the SQL panel
type SQLController struct {
	dispatcher *services.Dispatcher
}

// NewSQLController creates a new SQLController
func NewSQLController(dispatcher *services.Dispatcher) *SQLController {
	return &SQLController{
		dispatcher: dispatcher,
	}
}

// GetTemplates lists the SQL templates
// @Summary List SQL templates
// @Description Templates in display order; the first entry is the empty custom query.
// @Tags sql
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TemplateListResponse}
// @Router /sql/templates [get]
func (c *SQLController) GetTemplates(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TemplateListResponse{Templates: catalog.Entries()}, ""))
}

// LookupTemplate returns the statement of one template
// @Summary Get SQL template
// @Tags sql
// @Produce json
// @Param label query string true "Template label"
// @Success 200 {object} dto.APIResponse{data=dto.TemplateResponse}
// @Failure 404 {object} dto.ErrorResponse "Unknown template"
// @Router /sql/templates/lookup [get]
func (c *SQLController) LookupTemplate(ctx *gin.Context) {
	label := ctx.Query("label")
	sql, ok := catalog.Lookup(label)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("Unknown template: "+label))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TemplateResponse{Label: label, SQL: sql}, ""))
}

// Execute runs a statement exactly as given
// @Summary Execute SQL
// @Description SELECT statements return rows; anything else is executed and committed. Database errors are reported in the outcome, success is false and the error text is verbatim.
// @Tags sql
// @Accept json
// @Produce json
// @Param request body dto.ExecuteSQLRequest true "Statement"
// @Success 200 {object} dto.APIResponse{data=services.Outcome}
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Router /sql/execute [post]
func (c *SQLController) Execute(ctx *gin.Context) {
	var req dto.ExecuteSQLRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	outcome := c.dispatcher.Dispatch(ctx.Request.Context(), req.SQL)

	resp := dto.APIResponse{
		Success:   !outcome.Failed,
		Message:   outcome.Message,
		Data:      outcome,
		Timestamp: time.Now(),
	}
	if outcome.Failed {
		resp.Error = dto.NewErrorDetail(dto.ErrorCodeDatabaseError, outcome.Message)
		resp.Error.DatabaseError = outcome.Error
	}
	ctx.JSON(http.StatusOK, resp)
}
