package models

import "time"

const MessageOK = "OK"

// ApiResponse is the envelope returned by every heroes endpoint.
// PrevPage and NextPage serialize as null when absent.
type ApiResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	PrevPage   *int   `json:"prevPage"`
	NextPage   *int   `json:"nextPage"`
	Heroes     []Hero `json:"heroes"`
	LastUpdate int64  `json:"lastUpdate"`
}

func NewSuccessResponse(heroes []Hero, prevPage, nextPage *int, now time.Time) ApiResponse {
	if heroes == nil {
		heroes = []Hero{}
	}
	return ApiResponse{
		Success:    true,
		Message:    MessageOK,
		PrevPage:   prevPage,
		NextPage:   nextPage,
		Heroes:     heroes,
		LastUpdate: now.UnixMilli(),
	}
}

func NewErrorResponse(message string, now time.Time) ApiResponse {
	return ApiResponse{
		Success:    false,
		Message:    message,
		Heroes:     []Hero{},
		LastUpdate: now.UnixMilli(),
	}
}
