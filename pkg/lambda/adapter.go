package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGateway converts an API Gateway proxy event into a generic Request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
	}
}

// ToAPIGateway converts a generic Response into an API Gateway proxy response
func ToAPIGateway(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// Serve runs a HandlerFunc against an API Gateway event. Handler errors never
// propagate to the runtime; they become a plain 500 so API Gateway relays a
// JSON body instead of its own error page.
func Serve(ctx context.Context, event events.APIGatewayProxyRequest, handler HandlerFunc) (events.APIGatewayProxyResponse, error) {
	resp, err := handler(ctx, FromAPIGateway(event))
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success":false,"message":"Internal server error"}`,
		}, nil
	}

	return ToAPIGateway(resp), nil
}
