package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelterfund/backend/pkg/httputil"
	"github.com/shelterfund/backend/pkg/models"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donations
// @Success		204
// @Param			id	path	string	true	"ID of the animal formatted as string"
// @Router			/v1/animals/{id}/donations [options]
func OptionsDonationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Record donations
// @Description	Records donations received for an animal
// @Tags			Donations
// @Produce		json
// @Success		201			{object}	DonationCreateResponse
// @Failure		400			{object}	DonationCreateResponse
// @Failure		404			{object}	DonationCreateResponse
// @Failure		500			{object}	DonationCreateResponse
// @Param			id			path		string					true	"ID of the animal formatted as string"
// @Param			donations	body		[]v1.DonationEditable	true	"Donations"
// @Router			/v1/animals/{id}/donations [post]
func (co Controller) CreateDonations(c *gin.Context) {
	animal, err := co.animal(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationCreateResponse{
			Error: &e,
		})
		return
	}

	var donations []DonationEditable
	err = httputil.BindData(c, &donations)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DonationCreateResponse{}

	for _, editable := range donations {
		donation := editable.model(animal.ID)
		err = co.DB.Create(&donation).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDonation(c, donation)
		r.Data = append(r.Data, DonationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get donations
// @Description	Returns all donations for an animal, newest first
// @Tags			Donations
// @Produce		json
// @Success		200	{object}	DonationListResponse
// @Failure		400	{object}	DonationListResponse
// @Failure		404	{object}	DonationListResponse
// @Failure		500	{object}	DonationListResponse
// @Param			id	path		string	true	"ID of the animal formatted as string"
// @Router			/v1/animals/{id}/donations [get]
func (co Controller) GetDonations(c *gin.Context) {
	animal, err := co.animal(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &s,
		})
		return
	}

	var donations []models.Donation
	err = co.DB.Where(&models.Donation{AnimalID: animal.ID}).Order("date DESC").Find(&donations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DonationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Donation, 0, len(donations))
	for _, donation := range donations {
		data = append(data, newDonation(c, donation))
	}

	c.JSON(http.StatusOK, DonationListResponse{Data: data})
}
