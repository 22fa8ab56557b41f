package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type cartItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type cartItemResponse struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	ShopID      string  `json:"shopId"`
	ShopName    string  `json:"shopName"`
	PriceUnit   string  `json:"priceUnit"`
	PriceAmount float64 `json:"priceAmount"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type cartResponse struct {
	Items     []cartItemResponse `json:"items"`
	Total     float64            `json:"total"`
	ItemCount int                `json:"itemCount"`
}

// GetCart handles GET /cart.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(actorID(ctx))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cart, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := cartResponse{
		Items:     make([]cartItemResponse, 0, len(cart.Items)),
		Total:     cart.Total,
		ItemCount: cart.ItemCount,
	}
	for _, item := range cart.Items {
		response.Items = append(response.Items, cartItemResponse{
			ItemID:      item.ItemID.String(),
			Name:        item.Name,
			ShopID:      item.ShopID.String(),
			ShopName:    item.ShopName,
			PriceUnit:   item.PriceUnit,
			PriceAmount: item.PriceAmount,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddToCart handles POST /cart/add. The response carries the cart's new total
// quantity so clients can update the cart badge without a second request.
func (s *Server) AddToCart(ctx echo.Context) error {
	var req cartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAddToCartCommand(actorID(ctx), itemID, req.Quantity)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	count, err := s.commands.AddToCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"itemCount": count})
}

// MergeCart handles POST /cart/merge: a guest cart folded into the stored
// one on login.
func (s *Server) MergeCart(ctx echo.Context) error {
	var req struct {
		Items []cartItemRequest `json:"items"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	entries := make([]commands.MergeCartEntry, 0, len(req.Items))
	for _, item := range req.Items {
		itemID, err := kernel.UUIDFromString(item.ItemID)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		entries = append(entries, commands.MergeCartEntry{
			ItemID:   itemID,
			Quantity: item.Quantity,
		})
	}

	cmd, err := commands.NewMergeCartCommand(actorID(ctx), entries)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	count, err := s.commands.MergeCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"itemCount": count})
}

// RemoveFromCart handles POST /cart/remove. Removing an absent item succeeds.
func (s *Server) RemoveFromCart(ctx echo.Context) error {
	var req cartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveFromCartCommand(actorID(ctx), itemID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.RemoveFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles POST /cart/clear.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(actorID(ctx))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
