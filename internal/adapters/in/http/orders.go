package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type placeOrderRequest struct {
	DeliveryAddress string `json:"deliveryAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

type orderSummaryResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	ShopName        string  `json:"shopName"`
	Status          string  `json:"status"`
	TotalBill       float64 `json:"totalBill"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentStatus   string  `json:"paymentStatus"`
}

type orderLineResponse struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	PriceUnit   string  `json:"priceUnit"`
	PriceAmount float64 `json:"priceAmount"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

func orderParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

// PlaceOrder handles POST /api/orders: the cart becomes an order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(actorID(ctx), req.DeliveryAddress, req.PaymentMethod)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	placed, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"id":        placed.ID().String(),
		"code":      placed.Code().String(),
		"totalBill": placed.TotalBill(),
		"status":    placed.Status().String(),
	})
}

// GetMyOrders handles GET /api/my-orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	query, err := queries.NewGetMyOrdersQuery(actorID(ctx))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orders, err := s.queries.GetMyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderSummaryResponse{
			ID:              o.ID.String(),
			Code:            o.Code,
			ShopName:        o.ShopName,
			Status:          o.Status,
			TotalBill:       o.TotalBill,
			DeliveryAddress: o.DeliveryAddress,
			PaymentMethod:   o.PaymentMethod,
			PaymentStatus:   o.PaymentStatus,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShopOrders handles GET /api/seller/orders: the queue across every shop
// the caller owns.
func (s *Server) GetShopOrders(ctx echo.Context) error {
	query, err := queries.NewGetShopOrdersQuery(actorID(ctx))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orders, err := s.queries.GetShopOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]echo.Map, 0, len(orders))
	for _, o := range orders {
		row := echo.Map{
			"id":              o.ID.String(),
			"code":            o.Code,
			"shopName":        o.ShopName,
			"consumerName":    o.ConsumerName,
			"status":          o.Status,
			"totalBill":       o.TotalBill,
			"deliveryAddress": o.DeliveryAddress,
			"paymentMethod":   o.PaymentMethod,
			"paymentStatus":   o.PaymentStatus,
		}
		if o.DeliveryPersonID != nil {
			row["deliveryPersonId"] = o.DeliveryPersonID.String()
		}
		response = append(response, row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSellerOrder handles GET /api/seller/orders/:orderId. Only the owner of
// the shop the order was placed against may see it.
func (s *Server) GetSellerOrder(ctx echo.Context) error {
	orderID, err := orderParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if !o.ShopOwnerID.IsEqual(actorID(ctx)) {
		return respondError(ctx, errs.NewNotAuthorizedError(actorID(ctx).String(), "order "+o.ID.String()))
	}

	lines := make([]orderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, orderLineResponse{
			ItemID:      line.ItemID.String(),
			Name:        line.Name,
			PriceUnit:   line.PriceUnit,
			PriceAmount: line.PriceAmount,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal,
		})
	}

	response := echo.Map{
		"id":              o.ID.String(),
		"code":            o.Code,
		"shopId":          o.ShopID.String(),
		"shopName":        o.ShopName,
		"status":          o.Status,
		"totalBill":       o.TotalBill,
		"deliveryAddress": o.DeliveryAddress,
		"paymentMethod":   o.PaymentMethod,
		"paymentStatus":   o.PaymentStatus,
		"lines":           lines,
	}
	if o.DeliveryPersonID != nil {
		response["deliveryPersonId"] = o.DeliveryPersonID.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetSellerOrderStatus handles PUT /api/seller/orders/:orderId/status. A
// seller can move a placed order to confirmed or cancelled; everything past
// that belongs to the delivery flow.
func (s *Server) SetSellerOrderStatus(ctx echo.Context) error {
	orderID, err := orderParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req orderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	switch req.Status {
	case "confirmed":
		cmd, err := commands.NewConfirmOrderCommand(actorID(ctx), orderID)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		if err := s.commands.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}
	case "cancelled":
		cmd, err := commands.NewCancelOrderCommand(actorID(ctx), orderID)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		if err := s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}
	default:
		return respondBadRequest(ctx, errs.NewValueIsInvalidError("status"))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDelivery handles PUT /api/seller/orders/:orderId/assign.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	orderID, err := orderParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req struct {
		DeliveryPersonID string `json:"deliveryPersonId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	deliveryPersonID, err := kernel.UUIDFromString(req.DeliveryPersonID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(actorID(ctx), orderID, deliveryPersonID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.AssignDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryPersonnel handles GET /api/delivery-personnel?location=.
func (s *Server) GetDeliveryPersonnel(ctx echo.Context) error {
	query := queries.NewGetDeliveryPersonnelQuery(ctx.QueryParam("location"))

	personnel, err := s.queries.GetDeliveryPersonnel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]echo.Map, 0, len(personnel))
	for _, person := range personnel {
		response = append(response, echo.Map{
			"id":           person.ID.String(),
			"realName":     person.RealName,
			"locationName": person.LocationName,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignments handles GET /api/delivery/my-orders.
func (s *Server) GetAssignments(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryAssignmentsQuery(actorID(ctx))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	assignments, err := s.queries.GetAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]echo.Map, 0, len(assignments))
	for _, a := range assignments {
		response = append(response, echo.Map{
			"id":              a.ID.String(),
			"code":            a.Code,
			"shopName":        a.ShopName,
			"shopLocation":    a.ShopLocation,
			"consumerName":    a.ConsumerName,
			"status":          a.Status,
			"totalBill":       a.TotalBill,
			"deliveryAddress": a.DeliveryAddress,
			"paymentMethod":   a.PaymentMethod,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetDeliveryOrderStatus handles PUT /api/delivery/orders/:orderId/status.
// The only move a delivery person can make is shipped to delivered.
func (s *Server) SetDeliveryOrderStatus(ctx echo.Context) error {
	orderID, err := orderParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req orderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	if req.Status != "delivered" {
		return respondBadRequest(ctx, errs.NewValueIsInvalidError("status"))
	}

	cmd, err := commands.NewMarkDeliveredCommand(actorID(ctx), orderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.MarkDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
