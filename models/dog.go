package models

import "time"

// Dog is a grooming subject, always linked to an owning customer.
type Dog struct {
	ID                 string     `bson:"id" json:"id"`
	OwnerID            string     `bson:"ownerId" json:"ownerId"`
	Name               string     `bson:"name" json:"name"`
	Sex                string     `bson:"sex,omitempty" json:"sex,omitempty"` // "male", "female" or "unknown"
	Breed              string     `bson:"breed,omitempty" json:"breed,omitempty"`
	DOB                *time.Time `bson:"dob,omitempty" json:"dob,omitempty"`
	Color              string     `bson:"color,omitempty" json:"color,omitempty"`
	Weight             float64    `bson:"weight,omitempty" json:"weight,omitempty"`
	Vet                string     `bson:"vet,omitempty" json:"vet,omitempty"`
	MedicalInfo        string     `bson:"medicalInfo,omitempty" json:"medicalInfo,omitempty"`
	RabiesVaccineDate  *time.Time `bson:"rabiesVaccineDate,omitempty" json:"rabiesVaccineDate,omitempty"`
	AreVaccinesCurrent bool       `bson:"areVaccinesCurrent" json:"areVaccinesCurrent"`
	IsFixed            bool       `bson:"isFixed" json:"isFixed"`
	Temperament        string     `bson:"temperament,omitempty" json:"temperament,omitempty"`
	ImageURL           string     `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	Notes              string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt" json:"updatedAt"`
}
