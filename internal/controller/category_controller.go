package controller

import (
	"catalog-be/internal/dto"
	"catalog-be/internal/pkg/security"
	"catalog-be/internal/pkg/serverutils"
	"catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowByName(ctx *fiber.Ctx) error
	ShowWithProducts(ctx *fiber.Ctx) error
	Exists(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type categoryController struct {
	categoryService service.ICategoryService
	issuer          *security.TokenIssuer
}

func NewCategoryController(categoryService service.ICategoryService, issuer *security.TokenIssuer) ICategoryController {
	return &categoryController{
		categoryService: categoryService,
		issuer:          issuer,
	}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/category/v1")
	h.Use(serverutils.JwtMiddleware(c.issuer))
	h.Get("", c.List)
	h.Get("exists", c.Exists)
	h.Get("name/:name/products", c.ShowWithProducts)
	h.Get("name/:name", c.ShowByName)
	h.Get(":id", c.Show)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CategoryDTO
	if err := ctx.BodyParser(&req); err != nil {
		return bodyError(err)
	}

	res, err := c.categoryService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create category", res))
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.CategoryDTO
	if err := ctx.BodyParser(&req); err != nil {
		return bodyError(err)
	}

	res, err := c.categoryService.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update category", res))
}

func (c *categoryController) Show(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.categoryService.FindById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show category", res))
}

func (c *categoryController) ShowByName(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

	var (
		res *dto.CategoryDTO
		err error
	)
	if ctx.QueryBool("ignore_case", false) {
		res, err = c.categoryService.FindByNameIgnoreCase(ctx.UserContext(), name)
	} else {
		res, err = c.categoryService.FindByName(ctx.UserContext(), name)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show category", res))
}

func (c *categoryController) ShowWithProducts(ctx *fiber.Ctx) error {
	res, err := c.categoryService.FindWithProductsByName(ctx.UserContext(), ctx.Params("name"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show category", res))
}

func (c *categoryController) Exists(ctx *fiber.Ctx) error {
	exists, err := c.categoryService.ExistsByName(ctx.UserContext(), ctx.Query("name"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success check category", fiber.Map{"exists": exists}))
}

// List pages through categories by their enabled flag, enabled by default.
func (c *categoryController) List(ctx *fiber.Ctx) error {
	res, err := c.categoryService.FindAllByEnabled(
		ctx.UserContext(),
		ctx.QueryBool("enabled", true),
		ctx.QueryInt("page", 0),
		ctx.QueryInt("size", 20),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list categories", res))
}

func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.categoryService.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete category", nil))
}
