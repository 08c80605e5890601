package handler

import (
	projectapp "github.com/atelier/backend/internal/application/project"
	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project, order item and workshop job API endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *projectapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *projectapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectapp.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID handles GET /projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	resp, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	req, err := bindListRequest(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}

	projects, total, err := h.projectService.List(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, projects, total, req.Page, req.PageSize)
}

// Update handles PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req projectapp.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.projectService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddOrderItem handles POST /projects/:id/order-items
func (h *ProjectHandler) AddOrderItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req projectapp.CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.projectService.AddOrderItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListOrderItems handles GET /projects/:id/order-items
func (h *ProjectHandler) ListOrderItems(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	items, err := h.projectService.ListOrderItems(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// AddWorkshopJob handles POST /projects/:id/workshop-jobs
func (h *ProjectHandler) AddWorkshopJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req projectapp.CreateWorkshopJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.projectService.AddWorkshopJob(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListWorkshopJobs handles GET /projects/:id/workshop-jobs
func (h *ProjectHandler) ListWorkshopJobs(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	jobs, err := h.projectService.ListWorkshopJobs(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, jobs)
}

// AddJobItem handles POST /workshop-jobs/:id/items
func (h *ProjectHandler) AddJobItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid workshop job ID")
		return
	}

	var req projectapp.CreateJobItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.projectService.AddJobItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListJobItems handles GET /workshop-jobs/:id/items
func (h *ProjectHandler) ListJobItems(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid workshop job ID")
		return
	}

	items, err := h.projectService.ListJobItems(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
