// Command lead-lambda serves the lead submission endpoint behind API
// Gateway. It shares the submission pipeline with cmd/api so both
// deployments answer identically.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	appconfig "github.com/signflow/leadgen-platform/internal/config"
	"github.com/signflow/leadgen-platform/internal/ghl"
	"github.com/signflow/leadgen-platform/internal/leads"
	"github.com/signflow/leadgen-platform/internal/notify"
	"github.com/signflow/leadgen-platform/pkg/logging"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	crmClient, err := ghl.NewClient(ghl.Config{
		APIKey:     cfg.GHLAPIKey,
		LocationID: cfg.GHLLocationID,
		BaseURL:    cfg.GHLBaseURL,
	}, logger)
	if err != nil {
		logger.Error("failed to build CRM client", "error", err)
		os.Exit(1)
	}

	var notifier leads.LeadNotifier
	sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger)
	if sender != nil && len(cfg.LeadNotifyEmails) > 0 {
		notifier = notify.NewService(sender, cfg.LeadNotifyEmails, cfg.SiteName, logger)
	}

	handler := leads.NewHandler(crmClient, notifier, nil, logger)

	lambda.Start(func(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return handle(ctx, handler, evt)
	})
}

func handle(ctx context.Context, handler *leads.Handler, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := strings.ToUpper(strings.TrimSpace(evt.RequestContext.HTTP.Method))
	path := strings.TrimSpace(evt.RawPath)
	if path == "" {
		path = strings.TrimSpace(evt.RequestContext.HTTP.Path)
	}

	if path == "/health" {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusOK, Body: "ok"}, nil
	}

	switch path {
	case "/api/submit-lead", "/submit-lead":
	default:
		return jsonResponse(http.StatusNotFound, leads.ErrorResponse{Error: "Not found"}), nil
	}

	if method == http.MethodOptions {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusOK, Headers: corsHeaders}, nil
	}
	if method != http.MethodPost {
		return jsonResponse(http.StatusMethodNotAllowed, leads.ErrorResponse{Error: "Method not allowed"}), nil
	}

	body, err := decodeBody(evt)
	if err != nil {
		return jsonResponse(http.StatusBadRequest, leads.ErrorResponse{Error: "Invalid request body"}), nil
	}

	status, resp := handler.Process(ctx, body)
	return jsonResponse(status, resp), nil
}

func jsonResponse(status int, body any) events.APIGatewayV2HTTPResponse {
	headers := map[string]string{"Content-Type": "application/json"}
	for k, v := range corsHeaders {
		headers[k] = v
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusInternalServerError, Headers: headers}
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(encoded),
	}
}

func decodeBody(evt events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if !evt.IsBase64Encoded {
		return []byte(evt.Body), nil
	}
	return base64.StdEncoding.DecodeString(evt.Body)
}
