package v1_test

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	v1 "github.com/shelterfund/backend/pkg/controllers/v1"
	"github.com/shelterfund/backend/test"
)

func (suite *TestSuiteStandard) TestDonations() {
	animal := suite.createAnimal("Bella")

	r := test.Request(suite.T(), suite.controller, http.MethodPost, animal.Links.Donations, []map[string]any{
		{"amount": "25", "date": "2024-03-01T00:00:00Z", "note": "Monthly sponsorship"},
		{"amount": "10.50", "date": "2024-03-15T00:00:00Z"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.DonationCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Require().Len(created.Data, 2)
	suite.Assert().Equal(animal.ID, created.Data[0].Data.AnimalID)
	suite.Assert().Equal(animal.Links.Self, created.Data[0].Data.Links.Animal)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, animal.Links.Donations, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.DonationListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("10.5", list.Data[0].Amount.String(), "newest donation first")
	suite.Assert().Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), list.Data[1].Date)
}

func (suite *TestSuiteStandard) TestDonationsInvalid() {
	animal := suite.createAnimal("Bella")

	r := test.Request(suite.T(), suite.controller, http.MethodPost, animal.Links.Donations, []map[string]any{{"amount": "0"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var created v1.DonationCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Require().Len(created.Data, 1)
	suite.Assert().Equal("donation amounts must be positive", *created.Data[0].Error)

	r = test.Request(suite.T(), suite.controller, http.MethodPost, allocationsURL(uuid.New(), "donations"), []map[string]any{{"amount": "5"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, allocationsURL(uuid.New(), "donations"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDonationsRaiseFunding() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "40", "60")

	r := test.Request(suite.T(), suite.controller, http.MethodGet, animal.Links.Funding, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary v1.FundingSummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.Assert().Equal("100", summary.Data.AmountRaised.String())
	suite.Assert().Equal("0", summary.Data.Committed.String())
	suite.Assert().Equal("100", summary.Data.Remaining.String())
	suite.Assert().Equal(animal.ID, summary.Data.AnimalID)
}
