package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/shelterfund/backend/pkg/controllers/v1"
	"github.com/shelterfund/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAnimalCreate() {
	animal := suite.createAnimal(" Bella ")

	suite.Assert().Equal("Bella", animal.Name)
	suite.Assert().Equal("http://example.com/v1/animals/"+animal.ID.String(), animal.Links.Self)
	suite.Assert().Equal(animal.Links.Self+"/funding", animal.Links.Funding)
	suite.Assert().Equal(animal.Links.Self+"/allocations", animal.Links.Allocations)
}

func (suite *TestSuiteStandard) TestAnimalCreateErrors() {
	r := test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/animals", []v1.AnimalEditable{{Name: "Rex"}, {Name: ""}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AnimalCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Rex", response.Data[0].Data.Name)
	suite.Assert().Equal("the name of an animal must not be empty", *response.Data[1].Error)

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/animals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), suite.controller, http.MethodPost, "http://example.com/v1/animals", `{"name": 5}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAnimalList() {
	_ = suite.createAnimal("Bella")
	_ = suite.createAnimal("Milo")
	_ = suite.createAnimal("Luna")

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"all", "", 3, 3},
		{"by name", "name=Milo", 1, 1},
		{"search", "search=u", 1, 1},
		{"limit", "limit=2", 2, 3},
		{"offset", "offset=2", 1, 3},
		{"nothing", "species=Cat", 0, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodGet, "http://example.com/v1/animals?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AnimalListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/animals?offset=-1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAnimalGet() {
	animal := suite.createAnimal("Bella")

	r := test.Request(suite.T(), suite.controller, http.MethodGet, animal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnimalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(animal.ID, response.Data.ID)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/animals/"+uuid.NewString(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/animals/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAnimalOptions() {
	animal := suite.createAnimal("Bella")

	tests := []struct {
		url    string
		status int
		allow  string
	}{
		{"http://example.com/v1/animals", http.StatusNoContent, "OPTIONS, GET, POST"},
		{animal.Links.Self, http.StatusNoContent, "OPTIONS, GET"},
		{animal.Links.Funding, http.StatusNoContent, "OPTIONS, GET"},
		{animal.Links.Donations, http.StatusNoContent, "OPTIONS, GET, POST"},
		{animal.Links.Allocations, http.StatusNoContent, "OPTIONS, GET, POST"},
		{animal.Links.Allocations + "/preview", http.StatusNoContent, "OPTIONS, POST"},
		{"http://example.com/v1/animals/" + uuid.NewString(), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), suite.controller, http.MethodOptions, tt.url, "")
		test.AssertHTTPStatus(suite.T(), &r, tt.status)
		suite.Assert().Equal(tt.allow, r.Header().Get("allow"), tt.url)
	}
}

func (suite *TestSuiteStandard) TestAnimalDatabaseClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), suite.controller, http.MethodGet, "http://example.com/v1/animals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
