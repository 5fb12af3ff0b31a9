package models

import "time"

// DocumentAnalysis is the stored result of analyzing an uploaded document.
// Records are append-only: create and list, no update or delete.
type DocumentAnalysis struct {
	ID             int       `json:"id"`
	FileName       string    `json:"fileName"`
	FileType       string    `json:"fileType"`
	AnalysisResult string    `json:"analysisResult"`
	Timestamp      time.Time `json:"timestamp"`
}

// AnalyzeDocumentRequest is the accepted payload for the analyze endpoint.
// Content is optional; the analyzer works from the file name and type when
// no text is supplied.
type AnalyzeDocumentRequest struct {
	FileName string  `json:"fileName" validate:"required"`
	FileType string  `json:"fileType" validate:"required"`
	Content  *string `json:"content"`
}
