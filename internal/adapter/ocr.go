package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/complyra/claimshield/internal/config"
	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/models"
	"github.com/go-resty/resty/v2"
)

// parseImagePath is the provider's parse endpoint, relative to the
// configured base URL.
const parseImagePath = "/parse/image"

type ocrClient struct {
	client *resty.Client
	apiKey string
	engine int
	logger *logger.Logger
}

// NewOCRClient constructs an [OCRClient] for the configured OCR provider.
func NewOCRClient(cfg config.OCR, log *logger.Logger) OCRClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &ocrClient{
		client: cli,
		apiKey: cfg.APIKey,
		engine: cfg.Engine,
		logger: log,
	}
}

// ExtractText submits the image as a multipart upload with the api key and
// engine selector as form fields, then returns the first parsed result's
// text.
//
// Error handling:
//   - transport failure or non-2xx status → wrapped ErrOCRFailed;
//   - provider-flagged processing failure → ErrOCRFailed with the
//     provider's message;
//   - empty ParsedResults or blank text → ErrNoTextRecognized.
func (o *ocrClient) ExtractText(ctx context.Context, filename string, image []byte) (string, error) {
	log := logger.FromContext(ctx)

	if filename == "" {
		filename = "upload.png"
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(image)).
		SetFormData(map[string]string{
			"apikey":    o.apiKey,
			"OCREngine": strconv.Itoa(o.engine),
		}).
		Post(parseImagePath)
	if err != nil {
		log.Err(err).Msg("OCR request failed")
		return "", fmt.Errorf("%w: %w", ErrOCRFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().Int("status", resp.StatusCode()).Msg("OCR provider returned non-OK status")
		return "", fmt.Errorf("%w: unexpected status %d", ErrOCRFailed, resp.StatusCode())
	}

	var parsed models.OCRResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		log.Err(err).Msg("error decoding OCR response")
		return "", fmt.Errorf("%w: decoding response: %w", ErrOCRFailed, err)
	}

	if parsed.IsErroredOnProcessing {
		log.Error().Strs("provider_errors", parsed.ErrorMessage).Msg("OCR provider reported processing failure")
		return "", fmt.Errorf("%w: %s", ErrOCRFailed, strings.Join(parsed.ErrorMessage, "; "))
	}

	if len(parsed.ParsedResults) == 0 {
		return "", ErrNoTextRecognized
	}

	text := parsed.ParsedResults[0].ParsedText
	if strings.TrimSpace(text) == "" {
		return "", ErrNoTextRecognized
	}

	return text, nil
}
