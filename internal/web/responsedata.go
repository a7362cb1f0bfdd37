package web

type messageResponse struct {
	Message string `json:"message"`
}

type notificationData struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type loginResponse struct {
	Message      string           `json:"message"`
	Token        string           `json:"token"`
	Role         string           `json:"role"`
	Notification notificationData `json:"notification"`
}
