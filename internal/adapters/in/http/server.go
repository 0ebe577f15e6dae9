// Package http adapts the delivery tracking use cases to the REST API
// described by the generated server bindings. It translates transport
// concerns (binding, auth context, status codes) and keeps all business
// rules in the application layer.
package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/application/usecases/queries"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/generated/servers"
	"deliverytrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// maxProofImageBytes caps the uploaded proof image size.
const maxProofImageBytes = 10 << 20

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	transitionOrderHandler commands.TransitionOrderCommandHandler
	submitProofHandler     commands.SubmitProofCommandHandler

	// Query handlers
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	submitProofHandler commands.SubmitProofCommandHandler,
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
) *Server {
	return &Server{
		transitionOrderHandler:   transitionOrderHandler,
		submitProofHandler:       submitProofHandler,
		getAssignedOrdersHandler: getAssignedOrdersHandler,
	}
}

// GetAgentOrders handles GET /api/v1/agent/orders - the authenticated agent's worklist.
func (s *Server) GetAgentOrders(ctx echo.Context, params servers.GetAgentOrdersParams) error {
	agentID, ok := agentFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing authentication")
	}

	view := queries.ViewActive
	if params.View != nil {
		view = queries.View(*params.View)
	}

	var fromDate, toDate *time.Time
	if params.FromDate != nil {
		from := params.FromDate.Time
		fromDate = &from
	}
	if params.ToDate != nil {
		// A bare date upper bound covers that whole day.
		to := params.ToDate.Time.AddDate(0, 0, 1).Add(-time.Nanosecond)
		toDate = &to
	}

	query, err := queries.NewGetAssignedOrdersQuery(agentID, view, fromDate, toDate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getAssignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.AgentOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.AgentOrder{
			Id:                       o.ID.Bytes(),
			AgentStatus:              o.AgentStatus.String(),
			DisplayStatus:            o.DisplayStatus.String(),
			EstimatedDeliveryTime:    optionalString(o.EstimatedDeliveryTime),
			OrderAcceptedAt:          o.OrderAcceptedAt,
			DeliveredAt:              o.DeliveredAt,
			DeliveryProofImage:       optionalString(o.DeliveryProofImage),
			CustomerConfirmationNote: optionalString(o.CustomerConfirmationNote),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/agent/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	if _, ok := agentFromContext(ctx); !ok {
		return unauthorized(ctx, "Missing authentication")
	}

	var request servers.UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var eta string
	if request.EstimatedDeliveryTime != nil {
		eta = *request.EstimatedDeliveryTime
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, status, eta)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAgentOrder(updated))
}

// SubmitOrderProof handles POST /api/v1/agent/orders/{orderId}/proof.
func (s *Server) SubmitOrderProof(ctx echo.Context, orderId openapi_types.UUID) error {
	if _, ok := agentFromContext(ctx); !ok {
		return unauthorized(ctx, "Missing authentication")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	image, err := readProofImage(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "A proofImage file is required",
		})
	}

	note := ctx.FormValue("customerConfirmationNote")

	cmd, err := commands.NewSubmitProofCommand(orderID, image, note)
	if err != nil {
		return errorResponse(ctx, err)
	}

	delivered, err := s.submitProofHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAgentOrder(delivered))
}

// readProofImage extracts the uploaded proof image from the multipart form.
func readProofImage(ctx echo.Context) ([]byte, error) {
	fileHeader, err := ctx.FormFile("proofImage")
	if err != nil {
		return nil, err
	}
	if fileHeader.Size > maxProofImageBytes {
		return nil, errs.NewValueIsInvalidError("proofImage")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	image := make([]byte, fileHeader.Size)
	if _, err = io.ReadFull(file, image); err != nil {
		return nil, err
	}

	return image, nil
}

// toAgentOrder maps an order aggregate to its API representation.
func toAgentOrder(o *order.Order) servers.AgentOrder {
	return servers.AgentOrder{
		Id:                       o.ID().Bytes(),
		AgentStatus:              o.AgentStatus().String(),
		DisplayStatus:            o.DisplayStatus().String(),
		EstimatedDeliveryTime:    optionalString(o.EstimatedDeliveryTime()),
		OrderAcceptedAt:          o.OrderAcceptedAt(),
		DeliveredAt:              o.DeliveredAt(),
		DeliveryProofImage:       optionalString(o.DeliveryProofImage()),
		CustomerConfirmationNote: optionalString(o.CustomerConfirmationNote()),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// errorResponse maps application errors onto HTTP status codes:
//
//	404 unknown order
//	400 malformed input or unrecognized status
//	409 terminal-state violation or lost concurrent race
//	422 out-of-sequence transition
//	502 proof storage unavailable
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	case errors.Is(err, order.ErrOutOfSequence):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrTerminalStateViolation), errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, order.ErrProofRequired):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrProofStoreFailed):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}
