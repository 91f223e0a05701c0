package dto

// UploadPdfResponse carries the assigned attachment id and the
// deterministic file path the upload was written to.
type UploadPdfResponse struct {
	PdfID    int64  `json:"pdfID"`
	FilePath string `json:"filePath"`
}
