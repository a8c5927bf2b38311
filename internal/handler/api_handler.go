package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"apicatalog/internal/config"
	"apicatalog/internal/domain"
	"apicatalog/internal/export"
	"apicatalog/internal/service"
)

// ApiHandler handles API catalog endpoints.
type ApiHandler struct {
	apiService service.ApiService
	exportCfg  config.ExportConfig
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(apiService service.ApiService, exportCfg config.ExportConfig) *ApiHandler {
	return &ApiHandler{apiService: apiService, exportCfg: exportCfg}
}

// UpdateApiRequest is the body of PUT /api/v1/apis/:id.
type UpdateApiRequest struct {
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Views          []string              `json:"views"`
	Definition     string                `json:"definition"`
	DeployedAt     *time.Time            `json:"deployed_at"`
	Groups         []string              `json:"groups"`
	LifecycleState domain.LifecycleState `json:"lifecycle_state"`
	Picture        string                `json:"picture"`
	Version        string                `json:"version"`
	Visibility     domain.Visibility     `json:"visibility"`
	Labels         []string              `json:"labels"`
}

// GetByID handles GET /api/v1/apis/:id
// @Summary Get API by ID
// @Description Get a catalogued API with its definition, views, groups and labels
// @Tags apis
// @Produce json
// @Param id path string true "API ID"
// @Success 200 {object} APIResponse{data=domain.Api} "API details"
// @Failure 404 {object} APIResponse "API not found"
// @Router /apis/{id} [get]
func (h *ApiHandler) GetByID(c *gin.Context) {
	api, err := h.apiService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, api)
}

// List handles GET /api/v1/apis
// @Summary Search APIs
// @Description Search APIs by criteria. List filters accept comma separated or repeated values.
// @Description Passing page, size or paged=true returns one page with pagination metadata.
// @Tags apis
// @Produce json
// @Param ids query []string false "API IDs" collectionFormat(multi)
// @Param groups query []string false "Group IDs" collectionFormat(multi)
// @Param name query string false "API name"
// @Param version query string false "API version"
// @Param view query string false "View tag"
// @Param label query string false "Label"
// @Param state query string false "Lifecycle state" Enums(started, stopped)
// @Param visibility query string false "Visibility" Enums(public, private)
// @Param exclude query []string false "Fields to leave out" collectionFormat(multi) Enums(definition, picture)
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size"
// @Param paged query bool false "Use the repository default pagination"
// @Success 200 {object} APIResponse{data=[]domain.Api,meta=PageMeta} "Matching APIs"
// @Failure 400 {object} APIResponse "Invalid filter or paging"
// @Router /apis [get]
func (h *ApiHandler) List(c *gin.Context) {
	input, ok := parseSearchInput(c)
	if !ok {
		return
	}

	result, err := h.apiService.Search(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if result.Page != nil {
		RespondPaginated(c, result.Apis, PageMeta{
			Page:  result.Page.PageNumber,
			Size:  result.Page.PageElements,
			Total: result.Page.TotalElements,
		})
		return
	}
	RespondOK(c, result.Apis)
}

// Update handles PUT /api/v1/apis/:id
// @Summary Update an API
// @Description Replace the editable fields of an API
// @Tags apis
// @Accept json
// @Produce json
// @Param id path string true "API ID"
// @Param request body UpdateApiRequest true "API fields"
// @Success 200 {object} APIResponse{data=domain.Api} "API updated"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 409 {object} APIResponse "API cannot be updated in its current state"
// @Router /apis/{id} [put]
func (h *ApiHandler) Update(c *gin.Context) {
	var req UpdateApiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	now := time.Now().UTC()
	api := &domain.Api{
		ID:             c.Param("id"),
		Name:           req.Name,
		Description:    req.Description,
		Views:          req.Views,
		Definition:     req.Definition,
		DeployedAt:     req.DeployedAt,
		Groups:         req.Groups,
		LifecycleState: req.LifecycleState,
		Picture:        req.Picture,
		UpdatedAt:      &now,
		Version:        req.Version,
		Visibility:     req.Visibility,
		Labels:         req.Labels,
	}

	updated, err := h.apiService.Update(c.Request.Context(), api)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, updated)
}

// Export handles GET /api/v1/apis/export
// @Summary Export APIs
// @Description Download the APIs matching the List filters as CSV or XLSX, capped at export.max_rows rows
// @Tags apis
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Export format" Enums(csv, xlsx) default(csv)
// @Param name query string false "API name"
// @Param version query string false "API version"
// @Param state query string false "Lifecycle state" Enums(started, stopped)
// @Param visibility query string false "Visibility" Enums(public, private)
// @Success 200 {file} file "Export file"
// @Failure 400 {object} APIResponse "Unsupported format or invalid filter"
// @Failure 429 {object} APIResponse "Rate limited"
// @Router /apis/export [get]
func (h *ApiHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}
	input, ok := parseSearchInput(c)
	if !ok {
		return
	}

	result, err := h.apiService.Search(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	apis := result.Apis
	if len(apis) > h.exportCfg.MaxRows {
		apis = apis[:h.exportCfg.MaxRows]
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, h.exportCfg.SheetName, apis); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(h.exportCfg.SheetName, format, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// parseSearchInput reads search filters from the query string.
// Returns false if the query is invalid (error response already written).
func parseSearchInput(c *gin.Context) (*service.SearchApisInput, bool) {
	input := &service.SearchApisInput{
		IDs:        splitList(c.QueryArray("ids")),
		Groups:     splitList(c.QueryArray("groups")),
		Name:       c.Query("name"),
		Version:    c.Query("version"),
		View:       c.Query("view"),
		Label:      c.Query("label"),
		State:      domain.LifecycleState(strings.ToLower(c.Query("state"))),
		Visibility: domain.Visibility(strings.ToLower(c.Query("visibility"))),
	}

	for _, field := range splitList(c.QueryArray("exclude")) {
		switch field {
		case "definition":
			input.ExcludeDefinition = true
		case "picture":
			input.ExcludePicture = true
		default:
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "exclude accepts definition, picture")
			return nil, false
		}
	}

	var ok bool
	if input.PageNumber, ok = queryInt(c, "page"); !ok {
		return nil, false
	}
	if input.PageSize, ok = queryInt(c, "size"); !ok {
		return nil, false
	}
	_, hasPage := c.GetQuery("page")
	_, hasSize := c.GetQuery("size")
	input.Paged = hasPage || hasSize || c.Query("paged") == "true"

	return input, true
}

func queryInt(c *gin.Context, key string) (int, bool) {
	raw, present := c.GetQuery(key)
	if !present {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", key+" must be an integer")
		return 0, false
	}
	return n, true
}

// splitList flattens repeated and comma-separated query values, dropping blanks.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
