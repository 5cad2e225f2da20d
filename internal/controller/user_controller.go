package controller

import (
	"catalog-be/internal/pkg/security"
	"catalog-be/internal/pkg/serverutils"
	"catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Me(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	issuer      *security.TokenIssuer
}

func NewUserController(userService service.IUserService, issuer *security.TokenIssuer) IUserController {
	return &userController{
		userService: userService,
		issuer:      issuer,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware(c.issuer))
	h.Get("", c.List)
	h.Get("me", c.Me)
	h.Get(":username", c.Show)
	h.Delete(":id", c.Delete)
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	res, err := c.userService.Me(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	res, err := c.userService.FindByUsername(ctx.UserContext(), ctx.Params("username"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show user", res))
}

// List returns every account, or only enabled ones with ?enabled=true.
func (c *userController) List(ctx *fiber.Ctx) error {
	res, err := c.userService.FindAll(ctx.UserContext(), ctx.QueryBool("enabled", false))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.userService.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user", nil))
}
