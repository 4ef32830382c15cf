package models

import "encoding/json"

// OCRResponse mirrors the JSON body returned by the OCR provider's
// parse/image endpoint. Only the fields consumed by the service are mapped.
type OCRResponse struct {
	// ParsedResults holds one entry per recognized page or region.
	// The service consumes the first entry only.
	ParsedResults []OCRParsedResult `json:"ParsedResults"`

	// OCRExitCode is the provider's overall result code
	// (1 = success, 2 = partial, 3/4 = failure).
	OCRExitCode int `json:"OCRExitCode"`

	// IsErroredOnProcessing is set when the provider failed to process
	// the submitted file.
	IsErroredOnProcessing bool `json:"IsErroredOnProcessing"`

	// ErrorMessage carries provider-side failure details, if any.
	ErrorMessage StringOrSlice `json:"ErrorMessage"`
}

// OCRParsedResult is one parsed region of the OCR response.
type OCRParsedResult struct {
	// ParsedText is the recognized text of the region.
	ParsedText string `json:"ParsedText"`

	// FileParseExitCode is the per-file result code.
	FileParseExitCode int `json:"FileParseExitCode"`
}

// StringOrSlice tolerates the provider returning ErrorMessage either as a
// single string or as a list of strings depending on the failure mode.
type StringOrSlice []string

// UnmarshalJSON accepts both `"msg"` and `["msg1","msg2"]` encodings.
func (s *StringOrSlice) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = StringOrSlice{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}
