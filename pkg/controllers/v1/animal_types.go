package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shelterfund/backend/pkg/models"
)

// AnimalEditable represents all user configurable parameters
type AnimalEditable struct {
	Name    string `json:"name" example:"Bella" default:""`                           // Name of the animal
	Species string `json:"species" example:"Dog" default:""`                          // Species of the animal
	Note    string `json:"note" example:"Found near the train station" default:""` // Notes about the animal
}

// model transforms the API representation into the model representation
func (e AnimalEditable) model() models.Animal {
	return models.Animal{
		Name:    e.Name,
		Species: e.Species,
		Note:    e.Note,
	}
}

type AnimalLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166"`                    // The animal itself
	Funding     string `json:"funding" example:"https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166/funding"`         // Funding summary of the animal
	Donations   string `json:"donations" example:"https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166/donations"`     // Donations for the animal
	Allocations string `json:"allocations" example:"https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166/allocations"` // Allocations for the animal
}

type Animal struct {
	models.DefaultModel
	AnimalEditable
	Links AnimalLinks `json:"links"` // Links to related resources
}

func newAnimal(c *gin.Context, model models.Animal) Animal {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/animals/%s", url, model.ID)

	return Animal{
		DefaultModel: model.DefaultModel,
		AnimalEditable: AnimalEditable{
			Name:    model.Name,
			Species: model.Species,
			Note:    model.Note,
		},
		Links: AnimalLinks{
			Self:        self,
			Funding:     self + "/funding",
			Donations:   self + "/donations",
			Allocations: self + "/allocations",
		},
	}
}

type AnimalListResponse struct {
	Data       []Animal    `json:"data"`                                                          // List of Animals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AnimalCreateResponse struct {
	Data  []AnimalResponse `json:"data"`                                                          // Data for the Animal
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// appendError appends an AnimalResponse with the error and returns the updated HTTP status
func (a *AnimalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AnimalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AnimalResponse struct {
	Data  *Animal `json:"data"`                                                          // Data for the Animal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AnimalQueryFilter struct {
	Name    string `form:"name"`    // By name
	Species string `form:"species"` // By species
	Search  string `form:"search"`  // By string in name or note
	Offset  uint   `form:"offset"`  // The offset of the first Animal returned. Defaults to 0.
	Limit   int    `form:"limit"`   // Maximum number of Animals to return. Defaults to 50.
}
