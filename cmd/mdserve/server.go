package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/npillmayer/mdtree/core/parameters"
)

// BodyLimit is the maximum size of a request body.
const BodyLimit = 4 * 1024 * 1024

type Server struct {
	app  *fiber.App
	addr string
}

// New creates a server for address addr, with markdown parameters from regs.
func New(addr string, regs *parameters.Registers) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             BodyLimit,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	registerRoutes(app, regs)
	return &Server{app: app, addr: addr}
}

func registerRoutes(app *fiber.App, regs *parameters.Registers) {
	api := app.Group("/api")
	NewMarkdownController(regs).RegisterRoutes(api)
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	tracer().Infof("markdown service is listening on %s", s.addr)
	return s.app.Listen(s.addr)
}
