package ports

// Response is the uniform success envelope every use-case resolves to.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Item    any    `json:"item,omitempty"`
	Items   any    `json:"items,omitempty"`
}
