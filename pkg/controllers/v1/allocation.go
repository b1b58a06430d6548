package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shelterfund/backend/pkg/funding"
	"github.com/shelterfund/backend/pkg/httputil"
	"github.com/shelterfund/backend/pkg/models"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	// Allocation with ID
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", co.GetAllocation)
		r.PATCH("/:id", co.UpdateAllocation)
		r.DELETE("/:id", co.DeleteAllocation)
	}

	// Status of the allocation
	{
		r.OPTIONS("/:id/status", OptionsAllocationStatus)
		r.PUT("/:id/status", co.SetAllocationStatus)
	}
}

// allocationFailure writes the response for a failed ledger operation.
//
// Conflicts carry the current allocation and pool so that the client can
// retry on fresh data.
func allocationFailure(c *gin.Context, err error, pool funding.Pool) {
	s := err.Error()
	r := AllocationResponse{
		Error:  &s,
		Errors: fieldErrors(err),
	}

	var conflict *funding.ConflictError
	if errors.As(err, &conflict) {
		pool = conflict.Pool
		if conflict.Allocation != nil {
			data := newAllocation(c, *conflict.Allocation, false)
			r.Data = &data
		}
	}

	if pool.AnimalID != uuid.Nil {
		r.Pool = &pool
	}

	c.JSON(status(err), r)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Funding
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the animal formatted as string"
// @Router			/v1/animals/{id}/funding [options]
func (co Controller) OptionsAnimalFunding(c *gin.Context) {
	_, err := co.animal(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get funding summary
// @Description	Returns the amount raised, committed and remaining for an animal
// @Tags			Funding
// @Produce		json
// @Success		200	{object}	FundingSummaryResponse
// @Failure		400	{object}	FundingSummaryResponse
// @Failure		404	{object}	FundingSummaryResponse
// @Failure		500	{object}	FundingSummaryResponse
// @Param			id	path		string	true	"ID of the animal formatted as string"
// @Router			/v1/animals/{id}/funding [get]
func (co Controller) GetAnimalFunding(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FundingSummaryResponse{
			Error: &s,
		})
		return
	}

	pool, err := co.Ledger.Summary(c.Request.Context(), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FundingSummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, FundingSummaryResponse{Data: &pool})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Param			id	path	string	true	"ID of the animal formatted as string"
// @Router			/v1/animals/{id}/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get allocations
// @Description	Returns the allocations of an animal. With visible=true, only allocations shown to donors are returned and internal fields are left out.
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationListResponse
// @Failure		400		{object}	AllocationListResponse
// @Failure		404		{object}	AllocationListResponse
// @Failure		500		{object}	AllocationListResponse
// @Param			id		path		string	true	"ID of the animal formatted as string"
// @Param			visible	query		bool	false	"Only return allocations visible to donors"
// @Router			/v1/animals/{id}/allocations [get]
func (co Controller) GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	animal, err := co.animal(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	allocations, err := co.Ledger.Allocations(c.Request.Context(), animal.ID, filter.Visible)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Allocation, 0, len(allocations))
	for _, a := range allocations {
		data = append(data, newAllocation(c, a, filter.Visible))
	}

	c.JSON(http.StatusOK, AllocationListResponse{Data: data})
}

// @Summary		Create allocation
// @Description	Creates an allocation for an animal. The split between donations and external funding is computed from the donations that are available when the allocation is committed.
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		409			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		string					true	"ID of the animal formatted as string"
// @Param			allocation	body		v1.AllocationEditable	true	"Allocation"
// @Router			/v1/animals/{id}/allocations [post]
func (co Controller) CreateAllocation(c *gin.Context) {
	animal, err := co.animal(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var editable AllocationEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	result, err := co.Ledger.Save(c.Request.Context(), animal.ID, editable.input(nil), nil)
	if err != nil {
		allocationFailure(c, err, result.Pool)
		return
	}

	data := newAllocation(c, result.Allocation, false)
	c.JSON(http.StatusCreated, AllocationResponse{Data: &data, Pool: &result.Pool})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Param			id	path	string	true	"ID of the animal formatted as string"
// @Router			/v1/animals/{id}/allocations/preview [options]
func OptionsAllocationPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Preview allocation split
// @Description	Returns the split of a cost between donations and external funding without saving anything
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	SplitResponse
// @Failure		400		{object}	SplitResponse
// @Failure		404		{object}	SplitResponse
// @Failure		500		{object}	SplitResponse
// @Param			id		path		string			true	"ID of the animal formatted as string"
// @Param			split	body		v1.SplitRequest	true	"Cost to split"
// @Router			/v1/animals/{id}/allocations/preview [post]
func (co Controller) PreviewAllocation(c *gin.Context) {
	animal, err := co.animal(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SplitResponse{
			Error: &s,
		})
		return
	}

	var request SplitRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SplitResponse{
			Error: &s,
		})
		return
	}

	if request.TotalCost == nil {
		s := errTotalCostMissing.Error()
		c.JSON(http.StatusBadRequest, SplitResponse{
			Error: &s,
		})
		return
	}

	split, err := co.Ledger.ProposeSplit(c.Request.Context(), *request.TotalCost, animal.ID, request.Excluding)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SplitResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SplitResponse{Data: &split})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get allocation
// @Description	Returns a specific allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/allocations/{id} [get]
func (co Controller) GetAllocation(c *gin.Context) {
	allocation, err := co.allocation(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	data := newAllocation(c, allocation, false)
	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}

// @Summary		Update allocation
// @Description	Updates an allocation. Only values to be updated need to be specified, the version is always required.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		409			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		string				true	"ID formatted as string"
// @Param			allocation	body		v1.AllocationUpdate	true	"Allocation"
// @Router			/v1/allocations/{id} [patch]
func (co Controller) UpdateAllocation(c *gin.Context) {
	allocation, err := co.allocation(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var update AllocationUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var version *uint64
	if update.Version != 0 {
		version = &update.Version
	}

	result, err := co.Ledger.Save(c.Request.Context(), allocation.AnimalID, update.input(allocation), version)
	if err != nil {
		allocationFailure(c, err, result.Pool)
		return
	}

	data := newAllocation(c, result.Allocation, false)
	c.JSON(http.StatusOK, AllocationResponse{Data: &data, Pool: &result.Pool})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation. The donations it used are available again afterwards.
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	PoolResponse
// @Failure		400		{object}	AllocationResponse
// @Failure		404		{object}	AllocationResponse
// @Failure		409		{object}	AllocationResponse
// @Failure		500		{object}	AllocationResponse
// @Param			id		path		string	true	"ID formatted as string"
// @Param			version	query		uint64	true	"Version of the allocation"
// @Router			/v1/allocations/{id} [delete]
func (co Controller) DeleteAllocation(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	if !c.Request.URL.Query().Has("version") {
		s := errVersionParameter.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &s,
		})
		return
	}

	version, err := httputil.VersionFromString(c.Query("version"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	pool, err := co.Ledger.Delete(c.Request.Context(), id, version)
	if err != nil {
		allocationFailure(c, err, pool)
		return
	}

	c.JSON(http.StatusOK, PoolResponse{Pool: &pool})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/allocations/{id}/status [options]
func OptionsAllocationStatus(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Set allocation status
// @Description	Moves an allocation to another status. Allocations move forward one step at a time and can be moved back to any earlier status.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200		{object}	AllocationResponse
// @Failure		400		{object}	AllocationResponse
// @Failure		404		{object}	AllocationResponse
// @Failure		409		{object}	AllocationResponse
// @Failure		500		{object}	AllocationResponse
// @Param			id		path		string						true	"ID formatted as string"
// @Param			status	body		v1.AllocationStatusUpdate	true	"Status"
// @Router			/v1/allocations/{id}/status [put]
func (co Controller) SetAllocationStatus(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	var update AllocationStatusUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	if update.Version == 0 {
		s := funding.ErrVersionRequired.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &s,
		})
		return
	}

	result, err := co.Ledger.SetStatus(c.Request.Context(), id, update.Status, update.Version, update.LastUpdatedBy)
	if err != nil {
		allocationFailure(c, err, result.Pool)
		return
	}

	data := newAllocation(c, result.Allocation, false)
	c.JSON(http.StatusOK, AllocationResponse{Data: &data, Pool: &result.Pool})
}

// allocation loads the allocation identified by the "id" path parameter.
func (co Controller) allocation(c *gin.Context) (models.Allocation, error) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		return models.Allocation{}, err
	}

	return co.Ledger.Allocation(c.Request.Context(), id)
}
