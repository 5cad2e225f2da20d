package controller

import (
	"catalog-be/internal/dto"
	"catalog-be/internal/pkg/security"
	"catalog-be/internal/pkg/serverutils"
	"catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowByName(ctx *fiber.Ctx) error
	Exists(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	ListByCategory(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type productController struct {
	productService service.IProductService
	issuer         *security.TokenIssuer
}

func NewProductController(productService service.IProductService, issuer *security.TokenIssuer) IProductController {
	return &productController{
		productService: productService,
		issuer:         issuer,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/product/v1")
	h.Use(serverutils.JwtMiddleware(c.issuer))
	h.Get("", c.List)
	h.Get("search", c.Search)
	h.Get("exists", c.Exists)
	h.Get("name/:name", c.ShowByName)
	h.Get("category/:id", c.ListByCategory)
	h.Get(":id", c.Show)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

// Create stores a new product, or updates it when the body carries an id.
func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.ProductDTO
	if err := ctx.BodyParser(&req); err != nil {
		return bodyError(err)
	}

	res, err := c.productService.CreateOrUpdateProduct(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save product", res))
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.ProductDTO
	if err := ctx.BodyParser(&req); err != nil {
		return bodyError(err)
	}

	res, err := c.productService.UpdateProduct(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update product", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.productService.FindById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

// ShowByName matches exactly unless ?ignore_case=true.
func (c *productController) ShowByName(ctx *fiber.Ctx) error {
	name := ctx.Params("name")

	var (
		res *dto.ProductDTO
		err error
	)
	if ctx.QueryBool("ignore_case", false) {
		res, err = c.productService.FindByNameIgnoreCase(ctx.UserContext(), name)
	} else {
		res, err = c.productService.FindByName(ctx.UserContext(), name)
	}
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *productController) Exists(ctx *fiber.Ctx) error {
	exists, err := c.productService.ExistsByName(ctx.UserContext(), ctx.Query("name"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success check product", fiber.Map{"exists": exists}))
}

// List returns every product, or one page of them filtered by the active
// flag when ?active= is present.
func (c *productController) List(ctx *fiber.Ctx) error {
	if ctx.Query("active") == "" {
		res, err := c.productService.FindAll(ctx.UserContext())
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
	}

	res, err := c.productService.FindAllByActive(
		ctx.UserContext(),
		ctx.QueryBool("active", true),
		ctx.QueryInt("page", 0),
		ctx.QueryInt("size", 20),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *productController) Search(ctx *fiber.Ctx) error {
	res, err := c.productService.FilterByName(ctx.UserContext(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search products", res))
}

func (c *productController) ListByCategory(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.productService.FindAllByCategory(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list category products", res))
}

func (c *productController) Delete(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.productService.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete product", nil))
}
