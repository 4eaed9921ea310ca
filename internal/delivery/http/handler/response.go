package handler

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the minimal body for boolean-success mutations.
type SuccessResponse struct {
	Success bool `json:"success"`
}
