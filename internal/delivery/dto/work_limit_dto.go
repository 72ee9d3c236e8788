package dto

import "time"

// Request DTOs

type CreateWorkLimitRequest struct {
	ResidentID string `json:"resident_id" validate:"omitempty,uuid"` // empty = global default
	LimitType  string `json:"limit_type" validate:"required,oneof=weekly_days daily_hours monthly_days"`
	MaxValue   int    `json:"max_value" validate:"required,min=1"`
}

type ValidateWorkLimitRequest struct {
	ResidentID   string `json:"resident_id" validate:"required,uuid"`
	LimitType    string `json:"limit_type" validate:"required,oneof=weekly_days daily_hours monthly_days"`
	CurrentValue int    `json:"current_value" validate:"gte=0"`
}

// Response DTOs

type WorkLimitResponse struct {
	ID         int       `json:"id"`
	ResidentID *string   `json:"resident_id,omitempty"` // nil = global default
	LimitType  string    `json:"limit_type"`
	MaxValue   int       `json:"max_value"`
	IsActive   *bool     `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type WorkLimitListResponse struct {
	Limits []WorkLimitResponse `json:"limits"`
	Total  int                 `json:"total"`
}

type ValidateWorkLimitResponse struct {
	Allowed        bool `json:"allowed"`
	EffectiveLimit int  `json:"effective_limit"`
	CurrentValue   int  `json:"current_value"`
}
