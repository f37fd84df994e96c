package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Rating bounds for a driver profile.
const (
	MinRating     = 0
	MaxRating     = 5
	DefaultRating = 5
)

// Profile describes a driver. There is exactly one per DriverID.
type Profile struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DriverID string             `json:"driver_id" bson:"driver_id"`
	Name     string             `json:"name" bson:"name"`
	CarModel string             `json:"car_model" bson:"car_model"`
	Rating   int                `json:"rating" bson:"rating"`
}
