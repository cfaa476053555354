package controllers

import (
	"foodorder/pkg/resp"
	"foodorder/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := ac.Service.Login(&req)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, res)
}
