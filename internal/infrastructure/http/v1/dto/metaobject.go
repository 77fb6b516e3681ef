// Package dto defines request and response shapes for the v1 API.
package dto

// FieldInput is one field value in a create/update request.
type FieldInput struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// CreateMetaobjectRequest is the payload for POST /metaobjects.
type CreateMetaobjectRequest struct {
	Type   string       `json:"type" binding:"required"`
	Handle string       `json:"handle"`
	Fields []FieldInput `json:"fields" binding:"required"`
}

// UpdateMetaobjectRequest is the payload for PUT /metaobjects/*id.
type UpdateMetaobjectRequest struct {
	Fields []FieldInput `json:"fields" binding:"required"`
}
