package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type shopRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	LocationName string `json:"locationName"`
	ImageURL     string `json:"imageUrl"`
}

type shopResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	LocationName string `json:"locationName"`
	ImageURL     string `json:"imageUrl"`
}

type itemRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	PerPiece    *float64 `json:"perPiece"`
	PerUnit     *float64 `json:"perUnit"`
	Per100Gram  *float64 `json:"per100gm"`
	Available   *bool    `json:"available"`
}

type itemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	PriceUnit   string  `json:"priceUnit"`
	PriceAmount float64 `json:"priceAmount"`
	Available   bool    `json:"available"`
}

func shopParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("shopId"))
}

func itemParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("itemId"))
}

// GetLocations handles GET /api/locations.
func (s *Server) GetLocations(ctx echo.Context) error {
	locations, err := s.queries.GetLocations.Handle(
		ctx.Request().Context(), queries.NewGetLocationsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, locations)
}

// GetShops handles GET /home?location=, the public browse listing.
func (s *Server) GetShops(ctx echo.Context) error {
	query := queries.NewGetShopsQuery(ctx.QueryParam("location"))

	shops, err := s.queries.GetShops.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]shopResponse, 0, len(shops))
	for _, shop := range shops {
		response = append(response, shopResponse{
			ID:           shop.ID.String(),
			Name:         shop.Name,
			Category:     shop.Category,
			LocationName: shop.LocationName,
			ImageURL:     shop.ImageURL,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShop handles GET /shops/:shopId.
func (s *Server) GetShop(ctx echo.Context) error {
	shopID, err := shopParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetShopQuery(shopID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	shop, err := s.queries.GetShop.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shopResponse{
		ID:           shop.ID.String(),
		Name:         shop.Name,
		Category:     shop.Category,
		LocationName: shop.LocationName,
		ImageURL:     shop.ImageURL,
	})
}

// GetShopItems handles GET /shops/:shopId/items, the public catalog. Only
// available items are listed.
func (s *Server) GetShopItems(ctx echo.Context) error {
	return s.listShopItems(ctx, true)
}

// GetOwnShopItems handles GET /api/shops/:shopId/items, the seller's
// management view including hidden items. Only the shop's owner may use it.
func (s *Server) GetOwnShopItems(ctx echo.Context) error {
	shopID, err := shopParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	shopQuery, err := queries.NewGetShopQuery(shopID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	shop, err := s.queries.GetShop.Handle(ctx.Request().Context(), shopQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	if !shop.OwnerID.IsEqual(actorID(ctx)) {
		return respondError(ctx, errs.NewNotAuthorizedError(actorID(ctx).String(), "shop "+shop.ID.String()))
	}

	return s.listShopItems(ctx, false)
}

func (s *Server) listShopItems(ctx echo.Context, onlyAvailable bool) error {
	shopID, err := shopParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetShopItemsQuery(shopID, onlyAvailable)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	items, err := s.queries.GetShopItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]itemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, itemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Category:    item.Category,
			Description: item.Description,
			PriceUnit:   item.PriceUnit,
			PriceAmount: item.PriceAmount,
			Available:   item.Available,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyShops handles GET /api/seller/shops.
func (s *Server) GetMyShops(ctx echo.Context) error {
	query, err := queries.NewGetMyShopsQuery(actorID(ctx))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	shops, err := s.queries.GetMyShops.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]shopResponse, 0, len(shops))
	for _, shop := range shops {
		response = append(response, shopResponse{
			ID:           shop.ID.String(),
			Name:         shop.Name,
			Category:     shop.Category,
			LocationName: shop.LocationName,
			ImageURL:     shop.ImageURL,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShop handles POST /api/shops.
func (s *Server) CreateShop(ctx echo.Context) error {
	var req shopRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	shopID := kernel.NewUUID()
	cmd, err := commands.NewCreateShopCommand(
		actorID(ctx), shopID, req.Name, req.Category, req.LocationName, req.ImageURL,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.CreateShop.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"id": shopID.String()})
}

// UpdateShop handles PUT /api/shops/:shopId.
func (s *Server) UpdateShop(ctx echo.Context) error {
	shopID, err := shopParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req shopRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateShopCommand(
		actorID(ctx), shopID, req.Name, req.Category, req.LocationName, req.ImageURL,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.UpdateShop.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateItem handles POST /api/shops/:shopId/items. Exactly one price tier
// must be present in the request.
func (s *Server) CreateItem(ctx echo.Context) error {
	shopID, err := shopParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req itemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	price, err := kernel.PriceFromTiers(req.PerPiece, req.PerUnit, req.Per100Gram)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(
		actorID(ctx), itemID, shopID, req.Name, req.Category, req.Description, price,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.CreateItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"id": itemID.String()})
}

// UpdateItem handles PUT /api/items/:itemId. An omitted available flag keeps
// the item visible.
func (s *Server) UpdateItem(ctx echo.Context) error {
	itemID, err := itemParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req itemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	price, err := kernel.PriceFromTiers(req.PerPiece, req.PerUnit, req.Per100Gram)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	cmd, err := commands.NewUpdateItemCommand(
		actorID(ctx), itemID, req.Name, req.Category, req.Description, price, available,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.UpdateItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteItem handles DELETE /api/items/:itemId.
func (s *Server) DeleteItem(ctx echo.Context) error {
	itemID, err := itemParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteItemCommand(actorID(ctx), itemID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.DeleteItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
