package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"github.com/raksika249/ecom-auth-service/internal/config"
	"github.com/raksika249/ecom-auth-service/internal/service"
	"github.com/raksika249/ecom-auth-service/internal/web/webpath"
)

type Server struct {
	auth *service.AuthService
	app  *fiber.App
	cfg  config.Server
	log  *logrus.Logger
}

func New(cfg config.Server, auth *service.AuthService, log *logrus.Logger) *Server {
	server := Server{
		auth: auth,
		cfg:  cfg,
		log:  log,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: !cfg.Debug,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type,Authorization",
		AllowMethods: "OPTIONS,POST",
	}))

	app.Post(webpath.Register, server.handleRegister)
	app.Post(webpath.Login, server.handleLogin)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) handleRegister(ctx *fiber.Ctx) error {
	req, err := parseRegisterRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: err.Error()})
	}

	err = s.auth.Register(ctx.Context(), req.Email, req.Password, req.Name)
	switch {
	case err == nil:
		return ctx.Status(fiber.StatusCreated).JSON(messageResponse{Message: "User registered successfully"})
	case errors.Is(err, service.ErrEmailTaken):
		return ctx.Status(fiber.StatusConflict).JSON(messageResponse{Message: "Email already registered"})
	default:
		s.log.WithError(err).WithField("email", req.Email).Error("registration failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: "Internal server error"})
	}
}

func (s *Server) handleLogin(ctx *fiber.Ctx) error {
	req, err := parseLoginRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: err.Error()})
	}

	session, err := s.auth.Login(ctx.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		return ctx.JSON(loginResponse{
			Message: "Login successful",
			Token:   session.Token,
			Role:    session.Role,
			Notification: notificationData{
				Message: session.Notice.Message,
				Type:    session.Notice.Type,
			},
		})
	case errors.Is(err, service.ErrUserNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(messageResponse{Message: "User not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return ctx.Status(fiber.StatusUnauthorized).JSON(messageResponse{Message: "Invalid credentials"})
	default:
		s.log.WithError(err).WithField("email", req.Email).Error("login failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(messageResponse{Message: "Internal server error"})
	}
}
