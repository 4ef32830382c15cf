package models

// AnalyzeResult carries the per-request artifacts of a bill analysis:
// the OCR-extracted text and the drafted appeal letter. The caller keeps
// these between requests; the server holds no session copy.
type AnalyzeResult struct {
	// ExtractedText is the raw text recognized from the uploaded bill image.
	ExtractedText string `json:"extracted_text"`

	// AppealLetter is the generated No Surprises Act appeal draft.
	AppealLetter string `json:"appeal_letter"`
}
