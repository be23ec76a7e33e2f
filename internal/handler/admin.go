package handler

import (
	"net/http"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(session))
}

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.statsService.Compute(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

func (h *Handler) CreateAdmin(c *ginext.Context) {
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	admin, err := h.authService.CreateAdmin(c.Request.Context(), domain.CreateAdminInput{
		Email:    req.Email,
		Name:     req.Name,
		Role:     domain.AdminRole(req.Role),
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdminResponse(admin))
}

func (h *Handler) ListAdmins(c *ginext.Context) {
	admins, err := h.authService.ListAdmins(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AdminResponse, 0, len(admins))
	for _, a := range admins {
		resp = append(resp, dto.ToAdminResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}
