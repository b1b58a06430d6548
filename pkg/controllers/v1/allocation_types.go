package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shelterfund/backend/pkg/funding"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// AllocationEditable represents all user configurable parameters of an
// allocation. The split between donations and external funding is always
// computed by the server.
type AllocationEditable struct {
	Category                 string                  `json:"category" example:"Medical"`                                                  // Category of the expense
	AllocationType           string                  `json:"allocationType" example:"Surgery"`                                            // Type of the expense
	ServiceProvider          string                  `json:"serviceProvider" example:"City Vet Clinic"`                                   // Who provided the service
	TotalCost                *decimal.Decimal        `json:"totalCost" example:"120.5"`                                                   // The full cost of the expense
	ExternalFundingSource    string                  `json:"externalFundingSource" example:"Grant"`                                       // Source of the funds not covered by donations
	ExternalFundingNotes     string                  `json:"externalFundingNotes" example:"Covered by the spring grant"`                  // Notes about the external funding
	ExternalFundingConfirmed bool                    `json:"externalFundingConfirmed" example:"true" default:"false"`                     // Confirms that part of the cost is funded externally
	Status                   models.AllocationStatus `json:"status" example:"Draft" enums:"Draft,Verified,Published"`                     // Visibility of the allocation for donors
	PublicDescription        string                  `json:"publicDescription" example:"Bella had her leg fixed"`                         // Description shown to donors
	InternalNotes            string                  `json:"internalNotes" example:"Follow-up in two weeks"`                              // Notes for shelter staff
	ConditionUpdate          string                  `json:"conditionUpdate" example:"Recovering well"`                                   // Update on the condition of the animal
	ReceiptImage             string                  `json:"receiptImage" example:"receipts/2024/03/bella-surgery.jpg"`                   // Reference to the receipt
	TreatmentPhoto           string                  `json:"treatmentPhoto" example:"photos/2024/03/bella.jpg"`                           // Reference to a photo of the treatment
	LastUpdatedBy            string                  `json:"lastUpdatedBy" example:"jane@shelter.example"`                                // Who made the change
}

func (e AllocationEditable) input(id *uuid.UUID) funding.AllocationInput {
	return funding.AllocationInput{
		ID:                       id,
		Category:                 e.Category,
		AllocationType:           e.AllocationType,
		ServiceProvider:          e.ServiceProvider,
		TotalCost:                e.TotalCost,
		ExternalFundingSource:    e.ExternalFundingSource,
		ExternalFundingNotes:     e.ExternalFundingNotes,
		ExternalFundingConfirmed: e.ExternalFundingConfirmed,
		Status:                   e.Status,
		PublicDescription:        e.PublicDescription,
		InternalNotes:            e.InternalNotes,
		ConditionUpdate:          e.ConditionUpdate,
		ReceiptImage:             e.ReceiptImage,
		TreatmentPhoto:           e.TreatmentPhoto,
		LastUpdatedBy:            e.LastUpdatedBy,
	}
}

// AllocationUpdate contains the fields to update on an allocation. Only
// fields that are set are changed.
type AllocationUpdate struct {
	Version                  uint64                   `json:"version" example:"3"` // The version of the allocation this update is based on
	Category                 *string                  `json:"category"`
	AllocationType           *string                  `json:"allocationType"`
	ServiceProvider          *string                  `json:"serviceProvider"`
	TotalCost                *decimal.Decimal         `json:"totalCost"`
	ExternalFundingSource    *string                  `json:"externalFundingSource"`
	ExternalFundingNotes     *string                  `json:"externalFundingNotes"`
	ExternalFundingConfirmed *bool                    `json:"externalFundingConfirmed"`
	Status                   *models.AllocationStatus `json:"status"`
	PublicDescription        *string                  `json:"publicDescription"`
	InternalNotes            *string                  `json:"internalNotes"`
	ConditionUpdate          *string                  `json:"conditionUpdate"`
	ReceiptImage             *string                  `json:"receiptImage"`
	TreatmentPhoto           *string                  `json:"treatmentPhoto"`
	LastUpdatedBy            *string                  `json:"lastUpdatedBy"`
}

// input merges the update into the current state of the allocation.
//
// External funding of an allocation that is already partially funded counts
// as confirmed unless the update says otherwise.
func (u AllocationUpdate) input(current models.Allocation) funding.AllocationInput {
	total := current.TotalCost
	in := funding.AllocationInput{
		ID:                       &current.ID,
		Category:                 current.Category,
		AllocationType:           current.AllocationType,
		ServiceProvider:          current.ServiceProvider,
		TotalCost:                &total,
		ExternalFundingSource:    current.ExternalFundingSource,
		ExternalFundingNotes:     current.ExternalFundingNotes,
		ExternalFundingConfirmed: current.ExternalCoveredAmount.IsPositive(),
		Status:                   current.Status,
		PublicDescription:        current.PublicDescription,
		InternalNotes:            current.InternalNotes,
		ConditionUpdate:          current.ConditionUpdate,
		ReceiptImage:             current.ReceiptImage,
		TreatmentPhoto:           current.TreatmentPhoto,
		LastUpdatedBy:            current.LastUpdatedBy,
	}

	set(&in.Category, u.Category)
	set(&in.AllocationType, u.AllocationType)
	set(&in.ServiceProvider, u.ServiceProvider)
	set(&in.ExternalFundingSource, u.ExternalFundingSource)
	set(&in.ExternalFundingNotes, u.ExternalFundingNotes)
	set(&in.ExternalFundingConfirmed, u.ExternalFundingConfirmed)
	set(&in.Status, u.Status)
	set(&in.PublicDescription, u.PublicDescription)
	set(&in.InternalNotes, u.InternalNotes)
	set(&in.ConditionUpdate, u.ConditionUpdate)
	set(&in.ReceiptImage, u.ReceiptImage)
	set(&in.TreatmentPhoto, u.TreatmentPhoto)
	set(&in.LastUpdatedBy, u.LastUpdatedBy)

	if u.TotalCost != nil {
		in.TotalCost = u.TotalCost
	}

	return in
}

func set[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}

// AllocationStatusUpdate changes the status of an allocation.
type AllocationStatusUpdate struct {
	Status        models.AllocationStatus `json:"status" example:"Published" enums:"Draft,Verified,Published"` // The new status
	Version       uint64                  `json:"version" example:"3"`                                         // The version of the allocation this update is based on
	LastUpdatedBy string                  `json:"lastUpdatedBy" example:"jane@shelter.example"`                // Who made the change
}

type AllocationLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/allocations/45b6b5b9-f746-4ae9-b77b-7688b91f8166"`                // The allocation itself
	Animal  string `json:"animal" example:"https://example.com/api/v1/animals/a0909e84-e8f9-4cb6-82a5-025dff105ff2"`                  // The animal the allocation is for
	Funding string `json:"funding" example:"https://example.com/api/v1/animals/a0909e84-e8f9-4cb6-82a5-025dff105ff2/funding"`         // The funding summary of the animal
	Status  string `json:"status" example:"https://example.com/api/v1/allocations/45b6b5b9-f746-4ae9-b77b-7688b91f8166/status"`      // Endpoint to change the status
}

type Allocation struct {
	models.DefaultModel
	AnimalID              uuid.UUID               `json:"animalId" example:"a0909e84-e8f9-4cb6-82a5-025dff105ff2"`
	Category              string                  `json:"category" example:"Medical"`
	AllocationType        string                  `json:"allocationType" example:"Surgery"`
	ServiceProvider       string                  `json:"serviceProvider" example:"City Vet Clinic"`
	TotalCost             decimal.Decimal         `json:"totalCost" example:"120.5"`
	DonationCoveredAmount decimal.Decimal         `json:"donationCoveredAmount" example:"100"`
	ExternalCoveredAmount decimal.Decimal         `json:"externalCoveredAmount" example:"20.5"`
	ExternalFundingSource string                  `json:"externalFundingSource" example:"Grant"`
	ExternalFundingNotes  string                  `json:"externalFundingNotes" example:"Covered by the spring grant"`
	FundingStatus         models.FundingStatus    `json:"fundingStatus" example:"Partially Funded"`
	Status                models.AllocationStatus `json:"status" example:"Published"`
	PublicDescription     string                  `json:"publicDescription" example:"Bella had her leg fixed"`
	InternalNotes         string                  `json:"internalNotes,omitempty" example:"Follow-up in two weeks"`
	ConditionUpdate       string                  `json:"conditionUpdate" example:"Recovering well"`
	ReceiptImage          string                  `json:"receiptImage" example:"receipts/2024/03/bella-surgery.jpg"`
	TreatmentPhoto        string                  `json:"treatmentPhoto" example:"photos/2024/03/bella.jpg"`
	Version               uint64                  `json:"version" example:"3"`
	LastUpdatedBy         string                  `json:"lastUpdatedBy,omitempty" example:"jane@shelter.example"`
	Links                 AllocationLinks         `json:"links"`
}

// newAllocation converts the model to its API representation. For donor
// facing responses, internal fields are left out.
func newAllocation(c *gin.Context, model models.Allocation, donorView bool) Allocation {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/allocations/%s", url, model.ID)
	animal := fmt.Sprintf("%s/v1/animals/%s", url, model.AnimalID)

	a := Allocation{
		DefaultModel:          model.DefaultModel,
		AnimalID:              model.AnimalID,
		Category:              model.Category,
		AllocationType:        model.AllocationType,
		ServiceProvider:       model.ServiceProvider,
		TotalCost:             model.TotalCost,
		DonationCoveredAmount: model.DonationCoveredAmount,
		ExternalCoveredAmount: model.ExternalCoveredAmount,
		ExternalFundingSource: model.ExternalFundingSource,
		ExternalFundingNotes:  model.ExternalFundingNotes,
		FundingStatus:         model.FundingStatus(),
		Status:                model.Status,
		PublicDescription:     model.PublicDescription,
		InternalNotes:         model.InternalNotes,
		ConditionUpdate:       model.ConditionUpdate,
		ReceiptImage:          model.ReceiptImage,
		TreatmentPhoto:        model.TreatmentPhoto,
		Version:               model.Version,
		LastUpdatedBy:         model.LastUpdatedBy,
		Links: AllocationLinks{
			Self:    self,
			Animal:  animal,
			Funding: animal + "/funding",
			Status:  self + "/status",
		},
	}

	if donorView {
		a.InternalNotes = ""
		a.LastUpdatedBy = ""
	}

	return a
}

type AllocationResponse struct {
	Data   *Allocation       `json:"data"`                                                          // Data for the allocation
	Pool   *funding.Pool     `json:"pool"`                                                          // The funding pool of the animal after the change, or the current pool on errors
	Error  *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Errors map[string]string `json:"errors,omitempty"`                                              // Validation errors by field
}

type AllocationListResponse struct {
	Data  []Allocation `json:"data"`                                                          // List of allocations
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationQueryFilter struct {
	Visible bool `form:"visible"` // Only return allocations visible to donors
}

// SplitRequest asks for a preview of the split of a cost.
type SplitRequest struct {
	TotalCost *decimal.Decimal `json:"totalCost" example:"120.5"`                                 // The full cost of the expense
	Excluding *uuid.UUID       `json:"excluding" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // ID of an allocation that is being edited
}

type SplitResponse struct {
	Data  *funding.Split `json:"data"`                                                          // The proposed split
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FundingSummaryResponse struct {
	Data  *funding.Pool `json:"data"`                                                          // The funding pool of the animal
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PoolResponse struct {
	Pool  *funding.Pool `json:"pool"`                                                          // The funding pool of the animal
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
