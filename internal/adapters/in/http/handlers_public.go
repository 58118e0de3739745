package http

import (
	"net/http"

	"waterdrop/internal/core/application/usecases/commands"
	"waterdrop/internal/core/application/usecases/queries"
	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// handleRegisterUser handles POST /api/v1/users/register.
func (s *Server) handleRegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return badRequest(c, "unknown role: "+req.Role)
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), req.Name, req.Phone, role, req.VehicleNumber)
	if err != nil {
		return respondError(c, err)
	}

	registered, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, toUserResponse(registered))
}

// handleGetCatalog handles GET /api/v1/products: the orderable catalog.
func (s *Server) handleGetCatalog(c echo.Context) error {
	return s.respondProducts(c, queries.NewGetProductsQuery(true))
}

func (s *Server) respondProducts(c echo.Context, query queries.GetProductsQuery) error {
	products, err := s.handlers.GetProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ProductResponse{
			ID:            p.ID.Bytes(),
			Name:          p.Name,
			Description:   p.Description,
			Size:          p.Size,
			Price:         p.Price,
			DiscountPrice: p.DiscountPrice,
			IsAvailable:   p.IsAvailable,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
