package models

// MessageResponse is the body of endpoints that return only a status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserMessageResponse is the body of signup and verify-email responses:
// a status message plus the sanitized user record.
type UserMessageResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// AuthResponse is the body of login and refresh responses. User is sanitized;
// the refresh token appears here and nowhere else.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// Pagination is the metadata block accompanying a page of properties.
// Total is the number of matching rows independent of pagination.
type Pagination struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// PropertyPage is the body of POST /properties: one page of matching
// listings plus pagination metadata.
type PropertyPage struct {
	Data       []Property `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ErrorResponse is the structured body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
