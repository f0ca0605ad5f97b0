package partners

import "time"

type Partner struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Code      string    `bson:"code" json:"code"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Code string `json:"code" validate:"required,alphanum,uppercase,min=2,max=16"`
	Name string `json:"name" validate:"required"`
}
