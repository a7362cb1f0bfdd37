package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	errRegisterFields = errors.New("Name, email, and password are required")
	errLoginFields    = errors.New("Email and password are required")
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func parseRegisterRequest(ctx *fiber.Ctx) (registerRequest, error) {
	var req registerRequest
	// A malformed body reads as empty input and fails field validation.
	if err := ctx.BodyParser(&req); err != nil {
		req = registerRequest{}
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return registerRequest{}, errRegisterFields
	}
	return req, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func parseLoginRequest(ctx *fiber.Ctx) (loginRequest, error) {
	var req loginRequest
	if err := ctx.BodyParser(&req); err != nil {
		req = loginRequest{}
	}
	if req.Email == "" || req.Password == "" {
		return loginRequest{}, errLoginFields
	}
	return req, nil
}
