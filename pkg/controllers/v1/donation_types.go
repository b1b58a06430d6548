package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// DonationEditable represents all user configurable parameters
type DonationEditable struct {
	Amount decimal.Decimal `json:"amount" example:"25" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount of the donation
	Date   time.Time       `json:"date" example:"2024-03-12T00:00:00Z"`                                                               // Date the donation was received. Defaults to now
	Note   string          `json:"note" example:"Monthly sponsorship" default:""`                                                     // Note about the donation
}

func (e DonationEditable) model(animalID uuid.UUID) models.Donation {
	return models.Donation{
		AnimalID: animalID,
		Amount:   e.Amount,
		Date:     e.Date,
		Note:     e.Note,
	}
}

type DonationLinks struct {
	Animal string `json:"animal" example:"https://example.com/api/v1/animals/45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // The animal the donation is for
}

type Donation struct {
	models.DefaultModel
	DonationEditable
	AnimalID uuid.UUID     `json:"animalId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // ID of the animal
	Links    DonationLinks `json:"links"`
}

func newDonation(c *gin.Context, model models.Donation) Donation {
	url := c.GetString(string(models.DBContextURL))

	return Donation{
		DefaultModel: model.DefaultModel,
		DonationEditable: DonationEditable{
			Amount: model.Amount,
			Date:   model.Date,
			Note:   model.Note,
		},
		AnimalID: model.AnimalID,
		Links: DonationLinks{
			Animal: fmt.Sprintf("%s/v1/animals/%s", url, model.AnimalID),
		},
	}
}

type DonationListResponse struct {
	Data  []Donation `json:"data"`                                                          // List of donations
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DonationCreateResponse struct {
	Data  []DonationResponse `json:"data"`                                                          // Data for the donations
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// appendError appends a DonationResponse with the error and returns the updated HTTP status
func (d *DonationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DonationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DonationResponse struct {
	Data  *Donation `json:"data"`                                                          // Data for the donation
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
