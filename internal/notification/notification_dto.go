package notification

type NotificationResponse struct {
	ID        uint   `json:"id"`
	LeaveID   *uint  `json:"leave_id,omitempty"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type NotificationListResponse struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int64                  `json:"unread_count"`
}
