package lambda

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/zap"

	"hello-api-go/internal/constants"
	"hello-api-go/internal/util"
)

// fallbackBody is sent when an error body cannot be serialized
const fallbackBody = `{"error":"Internal server error","status":500}`

// Handler feeds API Gateway HTTP API (payload v2) events through an
// http.Handler, so Lambda and the standalone server share one router
type Handler struct {
	adapter *httpadapter.HandlerAdapterV2
	logger  *zap.Logger
}

func NewHandler(router http.Handler, logger *zap.Logger) *Handler {
	return &Handler{
		adapter: httpadapter.NewV2(router),
		logger:  logger,
	}
}

func (h *Handler) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := request.RequestContext.HTTP.Method
	if method == "" {
		return h.invalidRequest(fmt.Errorf("missing HTTP method")), nil
	}

	h.logger.Debug(fmt.Sprintf("%s Lambda request", constants.APIName()),
		zap.String("method", method),
		zap.String("path", request.RawPath),
	)

	response, err := h.adapter.ProxyWithContext(ctx, request)
	if err != nil {
		// the router always writes a status, so failures come from event conversion
		return h.invalidRequest(err), nil
	}
	return response, nil
}

func (h *Handler) invalidRequest(err error) events.APIGatewayV2HTTPResponse {
	h.logger.Warn(fmt.Sprintf("%s Invalid Lambda request", constants.APIName()), zap.Error(err))
	return createResponse(http.StatusBadRequest, map[string]interface{}{
		"error":  "Invalid request",
		"status": http.StatusBadRequest,
	})
}

func createResponse(statusCode int, body map[string]interface{}) events.APIGatewayV2HTTPResponse {
	bodyJSON, err := util.Serialize(body)
	if err != nil {
		statusCode = http.StatusInternalServerError
		bodyJSON = fallbackBody
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: bodyJSON,
	}
}
