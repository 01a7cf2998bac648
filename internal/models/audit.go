package models

// AuditLog records a single mutation of some resource. Read only.
type AuditLog struct {
	Meta
	ID           string         `json:"id"`
	ResourceType string         `json:"resourceType"`
	ResourceID   string         `json:"resourceId"`
	Action       string         `json:"action"`
	OldValues    map[string]any `json:"oldValues,omitempty"`
	NewValues    map[string]any `json:"newValues,omitempty"`
}
