package domain

type CreateZoneRequest struct {
	Name         string    `json:"name" validate:"required,max=128"`
	Latitude     float64   `json:"latitude" validate:"lat"`
	Longitude    float64   `json:"longitude" validate:"lng"`
	RadiusMeters float64   `json:"radius_m" validate:"required,gt=0,max=100000"`
	Level        RiskLevel `json:"risk_level" validate:"required,oneof=safe caution danger"`
	Active       *bool     `json:"active,omitempty"`
	Description  string    `json:"description,omitempty" validate:"max=1024"`
}

type UpdateZoneRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,max=128"`
	Latitude     *float64   `json:"latitude,omitempty" validate:"omitempty,lat"`
	Longitude    *float64   `json:"longitude,omitempty" validate:"omitempty,lng"`
	RadiusMeters *float64   `json:"radius_m,omitempty" validate:"omitempty,gt=0,max=100000"`
	Level        *RiskLevel `json:"risk_level,omitempty" validate:"omitempty,oneof=safe caution danger"`
	Active       *bool      `json:"active,omitempty"`
	Description  *string    `json:"description,omitempty" validate:"omitempty,max=1024"`
}

type ListZonesResponse struct {
	Zones []RiskZone `json:"zones"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
	Total int64      `json:"total"`
}
