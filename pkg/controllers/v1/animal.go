package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelterfund/backend/pkg/httputil"
	"github.com/shelterfund/backend/pkg/models"
)

// RegisterAnimalRoutes registers the routes for animals and everything
// scoped to an animal with the RouterGroup that is passed.
func (co Controller) RegisterAnimalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAnimalList)
		r.GET("", co.GetAnimals)
		r.POST("", co.CreateAnimals)
	}

	// Animal with ID
	{
		r.OPTIONS("/:id", co.OptionsAnimalDetail)
		r.GET("/:id", co.GetAnimal)
	}

	// Resources of the animal
	{
		r.OPTIONS("/:id/funding", co.OptionsAnimalFunding)
		r.GET("/:id/funding", co.GetAnimalFunding)

		r.OPTIONS("/:id/donations", OptionsDonationList)
		r.GET("/:id/donations", co.GetDonations)
		r.POST("/:id/donations", co.CreateDonations)

		r.OPTIONS("/:id/allocations", OptionsAllocationList)
		r.GET("/:id/allocations", co.GetAllocations)
		r.POST("/:id/allocations", co.CreateAllocation)

		r.OPTIONS("/:id/allocations/preview", OptionsAllocationPreview)
		r.POST("/:id/allocations/preview", co.PreviewAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Animals
// @Success		204
// @Router			/v1/animals [options]
func OptionsAnimalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Animals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/animals/{id} [options]
func (co Controller) OptionsAnimalDetail(c *gin.Context) {
	_, err := co.animal(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create animals
// @Description	Creates new animals
// @Tags			Animals
// @Produce		json
// @Success		201		{object}	AnimalCreateResponse
// @Failure		400		{object}	AnimalCreateResponse
// @Failure		500		{object}	AnimalCreateResponse
// @Param			animals	body		[]v1.AnimalEditable	true	"Animals"
// @Router			/v1/animals [post]
func (co Controller) CreateAnimals(c *gin.Context) {
	var animals []AnimalEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &animals)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnimalCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AnimalCreateResponse{}

	for _, editable := range animals {
		animal := editable.model()
		err = co.DB.Create(&animal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAnimal(c, animal)
		r.Data = append(r.Data, AnimalResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get animals
// @Description	Returns a list of animals
// @Tags			Animals
// @Produce		json
// @Success		200		{object}	AnimalListResponse
// @Failure		400		{object}	AnimalListResponse
// @Failure		500		{object}	AnimalListResponse
// @Router			/v1/animals [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			species	query	string	false	"Filter by species"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first Animal returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Animals to return. Defaults to 50."
func (co Controller) GetAnimals(c *gin.Context) {
	var filter AnimalQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AnimalListResponse{
			Error: &s,
		})
		return
	}

	q := co.DB.Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}

	if filter.Species != "" {
		q = q.Where("species = ?", filter.Species)
	}

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR note LIKE ?", search, search)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 animals and set the limit
	limit := 50
	if c.Request.URL.Query().Has("limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var animals []models.Animal
	err := q.Find(&animals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnimalListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Model(&models.Animal{}).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnimalListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Animal, 0, len(animals))
	for _, animal := range animals {
		data = append(data, newAnimal(c, animal))
	}

	c.JSON(http.StatusOK, AnimalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get animal
// @Description	Returns a specific animal
// @Tags			Animals
// @Produce		json
// @Success		200	{object}	AnimalResponse
// @Failure		400	{object}	AnimalResponse
// @Failure		404	{object}	AnimalResponse
// @Failure		500	{object}	AnimalResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/animals/{id} [get]
func (co Controller) GetAnimal(c *gin.Context) {
	animal, err := co.animal(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnimalResponse{
			Error: &s,
		})
		return
	}

	data := newAnimal(c, animal)
	c.JSON(http.StatusOK, AnimalResponse{Data: &data})
}

// animal loads the animal identified by the "id" path parameter.
func (co Controller) animal(c *gin.Context) (models.Animal, error) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		return models.Animal{}, err
	}

	var animal models.Animal
	err = co.DB.WithContext(c.Request.Context()).First(&animal, "id = ?", id).Error
	if err != nil {
		return models.Animal{}, err
	}

	return animal, nil
}
