// internal/domain/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixed values assigned to every newly registered user.
const (
	RoleDonor    = "donor"
	StatusActive = "active"
)

// User is a registered blood donor.
//
// NOTE:
//   - Field names are camelCase in both BSON and JSON; existing documents and
//     the web client depend on them.
//   - Optional fields are pointers so an omitted value is stored as null.
//   - Email is the lookup key but is not unique.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	PhotoURL    *string            `bson:"photoURL" json:"photoURL"`
	BloodGroup  *string            `bson:"bloodGroup" json:"bloodGroup"`
	DistrictID  *string            `bson:"districtId" json:"districtId"`
	UpazilaName *string            `bson:"upazilaName" json:"upazilaName"`
	Role        string             `bson:"role" json:"role"`     // donor
	Status      string             `bson:"status" json:"status"` // active
}

// InsertResult is the acknowledgment returned after a user is stored.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}
