package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type RefreshKnowledgeResponse struct {
	Message string `json:"message"`
	Entries int    `json:"entries"`
}
