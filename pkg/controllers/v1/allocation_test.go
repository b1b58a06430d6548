package v1_test

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	v1 "github.com/shelterfund/backend/pkg/controllers/v1"
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shelterfund/backend/test"
	"github.com/shopspring/decimal"
)

func food(total string) map[string]any {
	return map[string]any{
		"category":       "Food",
		"allocationType": "Kibble",
		"totalCost":      total,
		"internalNotes":  "Bought in bulk",
		"lastUpdatedBy":  "jane@shelter.example",
	}
}

func withGrant(body map[string]any) map[string]any {
	body["externalFundingSource"] = "Grant"
	body["externalFundingNotes"] = "Spring grant"
	body["externalFundingConfirmed"] = true
	return body
}

func (suite *TestSuiteStandard) assertAmount(expected string, actual decimal.Decimal, msgAndArgs ...any) {
	suite.Assert().True(decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s %v", expected, actual, msgAndArgs)
}

func (suite *TestSuiteStandard) TestAllocationNoDonationsLeft() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "1000")
	_ = suite.createAllocation(animal.ID, food("1000"), http.StatusCreated)

	r := suite.createAllocation(animal.ID, food("200"), http.StatusBadRequest)
	suite.Assert().Nil(r.Data)
	suite.Assert().Contains(r.Errors, "externalFundingSource")
	suite.Assert().Contains(r.Errors, "externalFundingNotes")
	suite.Assert().Contains(r.Errors, "externalFundingConfirmed")
	suite.Require().NotNil(r.Pool)
	suite.assertAmount("0", r.Pool.Remaining)

	r = suite.createAllocation(animal.ID, withGrant(food("200")), http.StatusCreated)
	suite.assertAmount("0", r.Data.DonationCoveredAmount)
	suite.assertAmount("200", r.Data.ExternalCoveredAmount)
	suite.Assert().Equal(models.FundingStatusPartiallyFunded, r.Data.FundingStatus)
}

func (suite *TestSuiteStandard) TestAllocationFullyFunded() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "150")

	r := suite.createAllocation(animal.ID, food("100"), http.StatusCreated)
	suite.assertAmount("100", r.Data.DonationCoveredAmount)
	suite.assertAmount("0", r.Data.ExternalCoveredAmount)
	suite.Assert().Equal(models.FundingStatusFullyFunded, r.Data.FundingStatus)
	suite.Assert().Equal(models.AllocationStatusDraft, r.Data.Status)
	suite.Assert().Equal(uint64(1), r.Data.Version)
	suite.Assert().Equal(allocationURL(r.Data.ID), r.Data.Links.Self)
	suite.assertAmount("50", r.Pool.Remaining)
}

func (suite *TestSuiteStandard) TestAllocationUpdate() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "100")
	a := suite.createAllocation(animal.ID, food("80"), http.StatusCreated).Data

	r := test.Request(suite.T(), suite.controller, http.MethodPatch, a.Links.Self, map[string]any{"version": a.Version, "totalCost": "60"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertAmount("60", response.Data.DonationCoveredAmount)
	suite.assertAmount("0", response.Data.ExternalCoveredAmount)
	suite.Assert().Equal("Food", response.Data.Category, "fields not in the update are kept")
	suite.Assert().Equal("Bought in bulk", response.Data.InternalNotes)
	suite.Assert().Equal(uint64(2), response.Data.Version)
	suite.assertAmount("40", response.Pool.Remaining)
}

func (suite *TestSuiteStandard) TestAllocationUpdateKeepsExternalConfirmation() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "50")
	a := suite.createAllocation(animal.ID, withGrant(food("80")), http.StatusCreated).Data

	r := test.Request(suite.T(), suite.controller, http.MethodPatch, a.Links.Self, map[string]any{"version": a.Version, "totalCost": "90"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertAmount("50", response.Data.DonationCoveredAmount)
	suite.assertAmount("40", response.Data.ExternalCoveredAmount)
	suite.Assert().Equal("Grant", response.Data.ExternalFundingSource)

	r = test.Request(suite.T(), suite.controller, http.MethodPatch, a.Links.Self, map[string]any{"version": response.Data.Version, "externalFundingConfirmed": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(response.Errors, "externalFundingConfirmed")
}

func (suite *TestSuiteStandard) TestAllocationUpdateConflict() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "100")
	a := suite.createAllocation(animal.ID, food("80"), http.StatusCreated).Data

	r := test.Request(suite.T(), suite.controller, http.MethodPatch, a.Links.Self, map[string]any{"version": a.Version, "totalCost": "70"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), suite.controller, http.MethodPatch, a.Links.Self, map[string]any{"version": a.Version, "totalCost": "10"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data, "conflicts return the current allocation")
	suite.Assert().Equal(uint64(2), response.Data.Version)
	suite.assertAmount("70", response.Data.TotalCost)
	suite.Require().NotNil(response.Pool)
	suite.assertAmount("30", response.Pool.Remaining)
}

func (suite *TestSuiteStandard) TestAllocationUpdateErrors() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "100")
	a := suite.createAllocation(animal.ID, food("80"), http.StatusCreated).Data

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"no version", a.Links.Self, map[string]any{"totalCost": "10"}, http.StatusBadRequest},
		{"negative cost", a.Links.Self, map[string]any{"version": 1, "totalCost": "-10"}, http.StatusBadRequest},
		{"invalid status", a.Links.Self, map[string]any{"version": 1, "status": "Archived"}, http.StatusBadRequest},
		{"skipped status", a.Links.Self, map[string]any{"version": 1, "status": "Published"}, http.StatusBadRequest},
		{"no body", a.Links.Self, "", http.StatusBadRequest},
		{"missing", allocationURL(uuid.New()), map[string]any{"version": 1}, http.StatusNotFound},
		{"invalid ID", "http://example.com/v1/allocations/nope", map[string]any{"version": 1}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), suite.controller, http.MethodPatch, tt.url, tt.body)
		suite.Assert().Equal(tt.status, r.Code, "%s: %s", tt.name, r.Body.String())
	}
}

func (suite *TestSuiteStandard) TestAllocationDelete() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "100")
	a := suite.createAllocation(animal.ID, food("80"), http.StatusCreated).Data

	r := test.Request(suite.T(), suite.controller, http.MethodDelete, a.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.controller, http.MethodDelete, a.Links.Self+"?version=zero", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.controller, http.MethodDelete, a.Links.Self+"?version=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), suite.controller, http.MethodDelete, a.Links.Self+"?version="+strconv.FormatUint(a.Version, 10), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PoolResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.assertAmount("100", response.Pool.Remaining)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, a.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.controller, http.MethodDelete, a.Links.Self+"?version=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAllocationStatus() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "100")
	a := suite.createAllocation(animal.ID, food("20"), http.StatusCreated).Data

	r := test.Request(suite.T(), suite.controller, http.MethodPut, a.Links.Status, v1.AllocationStatusUpdate{Status: models.AllocationStatusPublished, Version: a.Version})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(response.Errors, "status")

	version := a.Version
	for _, status := range []models.AllocationStatus{models.AllocationStatusVerified, models.AllocationStatusPublished} {
		r = test.Request(suite.T(), suite.controller, http.MethodPut, a.Links.Status, v1.AllocationStatusUpdate{Status: status, Version: version, LastUpdatedBy: "john@shelter.example"})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Equal(status, response.Data.Status)
		suite.Assert().Equal("john@shelter.example", response.Data.LastUpdatedBy)
		version = response.Data.Version
	}

	r = test.Request(suite.T(), suite.controller, http.MethodPut, a.Links.Status, v1.AllocationStatusUpdate{Status: models.AllocationStatusDraft})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.controller, http.MethodPut, a.Links.Status, v1.AllocationStatusUpdate{Status: models.AllocationStatusDraft, Version: a.Version})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), suite.controller, http.MethodPut, a.Links.Status, v1.AllocationStatusUpdate{Status: models.AllocationStatusDraft, Version: version})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAllocationListVisible() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "100")
	published := suite.createAllocation(animal.ID, func() map[string]any {
		body := food("20")
		body["status"] = "Published"
		return body
	}(), http.StatusCreated).Data
	_ = suite.createAllocation(animal.ID, food("30"), http.StatusCreated)

	r := test.Request(suite.T(), suite.controller, http.MethodGet, animal.Links.Allocations, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 2)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, animal.Links.Allocations+"?visible=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	list = v1.AllocationListResponse{}
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(published.ID, list.Data[0].ID)
	suite.Assert().Empty(list.Data[0].InternalNotes, "donors do not see internal notes")
	suite.Assert().Empty(list.Data[0].LastUpdatedBy)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, animal.Links.Allocations+"?visible=maybe", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationReceiptRequired() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "100")

	body := food("50")
	body["category"] = "Medical"
	r := suite.createAllocation(animal.ID, body, http.StatusBadRequest)
	suite.Assert().Contains(r.Errors, "receiptImage")

	body["receiptImage"] = "receipts/bella.jpg"
	_ = suite.createAllocation(animal.ID, body, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestAllocationCreateErrors() {
	animal := suite.createAnimal("Bella")

	r := suite.createAllocation(animal.ID, map[string]any{"category": "Food"}, http.StatusBadRequest)
	suite.Assert().Contains(r.Errors, "totalCost")

	_ = suite.createAllocation(uuid.New(), food("10"), http.StatusNotFound)

	req := test.Request(suite.T(), suite.controller, http.MethodPost, animal.Links.Allocations, `{"totalCost": true}`)
	test.AssertHTTPStatus(suite.T(), &req, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationPreview() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "100")
	a := suite.createAllocation(animal.ID, food("80"), http.StatusCreated).Data

	tests := []struct {
		name        string
		body        any
		status      int
		covered     string
		outstanding string
	}{
		{"new allocation", map[string]any{"totalCost": "50"}, http.StatusOK, "20", "30"},
		{"editing", map[string]any{"totalCost": "50", "excluding": a.ID}, http.StatusOK, "50", "0"},
		{"missing cost", map[string]any{}, http.StatusBadRequest, "", ""},
		{"zero cost", map[string]any{"totalCost": "0"}, http.StatusBadRequest, "", ""},
		{"unknown allocation", map[string]any{"totalCost": "50", "excluding": uuid.New()}, http.StatusNotFound, "", ""},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), suite.controller, http.MethodPost, animal.Links.Allocations+"/preview", tt.body)
		suite.Require().Equal(tt.status, r.Code, "%s: %s", tt.name, r.Body.String())

		if tt.status != http.StatusOK {
			continue
		}

		var response v1.SplitResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.assertAmount(tt.covered, response.Data.Covered, tt.name)
		suite.assertAmount(tt.outstanding, response.Data.Outstanding, tt.name)
	}

	// Previews never commit anything
	r := test.Request(suite.T(), suite.controller, http.MethodGet, animal.Links.Funding, "")
	var summary v1.FundingSummaryResponse
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.assertAmount("20", summary.Data.Remaining)
}

func (suite *TestSuiteStandard) TestAllocationOptions() {
	animal := suite.createAnimal("Bella")
	suite.donate(animal.ID, "100")
	a := suite.createAllocation(animal.ID, food("80"), http.StatusCreated).Data

	r := test.Request(suite.T(), suite.controller, http.MethodOptions, a.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), suite.controller, http.MethodOptions, a.Links.Status, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, PUT", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestFundingSummaryErrors() {
	r := test.Request(suite.T(), suite.controller, http.MethodGet, allocationsURL(uuid.New(), "funding"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/animals/nope/funding", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
