package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/npillmayer/mdtree/core"
	"github.com/npillmayer/mdtree/core/parameters"
	"github.com/npillmayer/mdtree/input/markdown"
	"github.com/npillmayer/mdtree/input/markdown/mdcache"
)

type IMarkdownController interface {
	RegisterRoutes(r fiber.Router)
	Parse(ctx *fiber.Ctx) error
	PlainText(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type markdownController struct {
	cache *mdcache.Cache
	width int // default preview width
}

func NewMarkdownController(regs *parameters.Registers) IMarkdownController {
	if regs == nil {
		regs = parameters.NewRegisters()
	}
	p := markdown.FromRegisters(regs)
	return &markdownController{
		cache: mdcache.FromRegisters(p, regs),
		width: regs.N(parameters.P_PREVIEWWIDTH),
	}
}

func (c *markdownController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/markdown")
	h.Post("/parse", c.Parse)
	h.Post("/plain", c.PlainText)
	h.Post("/preview", c.Preview)
	h.Get("/stats", c.Stats)
}

func (c *markdownController) Parse(ctx *fiber.Ctx) error {
	var req MarkdownRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, core.WrapError(err, core.EINVALID, "invalid request body"))
	}
	elements := c.cache.Parse(req.Source)
	tracer().Debugf("parse: %d bytes into %d elements", len(req.Source), len(elements))
	return ctx.JSON(successResponse("markdown parsed", ParseResponse{
		Elements: ToElementResponses(elements),
	}))
}

func (c *markdownController) PlainText(ctx *fiber.Ctx) error {
	var req MarkdownRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, core.WrapError(err, core.EINVALID, "invalid request body"))
	}
	return ctx.JSON(successResponse("plain text", TextResponse{
		Text: c.cache.PlainText(req.Source),
	}))
}

func (c *markdownController) Preview(ctx *fiber.Ctx) error {
	var req MarkdownRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, core.WrapError(err, core.EINVALID, "invalid request body"))
	}
	if req.Width < 0 {
		return fail(ctx, core.Error(core.EINVALID, "width must not be negative, is %d", req.Width))
	}
	width := req.Width
	if width == 0 {
		width = c.width
	}
	text := markdown.PreviewText(c.cache.PlainText(req.Source), width)
	return ctx.JSON(successResponse("preview", TextResponse{
		Text:  text,
		Width: width,
	}))
}

func (c *markdownController) Stats(ctx *fiber.Ctx) error {
	hits, misses := c.cache.Stats()
	return ctx.JSON(successResponse("cache statistics", fiber.Map{
		"entries": c.cache.Len(),
		"hits":    hits,
		"misses":  misses,
	}))
}

func successResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	}
}

// fail responds with the HTTP status and user message of err.
func fail(ctx *fiber.Ctx, err error) error {
	status := core.HTTPStatus(err)
	tracer().Infof("request %s failed: %v", ctx.Path(), err)
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"code":    status,
		"message": core.UserMessage(err),
	})
}
