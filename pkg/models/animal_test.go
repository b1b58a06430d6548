package models_test

import (
	"time"

	"github.com/shelterfund/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestAnimalTrim() {
	animal := models.Animal{Name: " Bella ", Species: "Dog  ", Note: "\tLikes walks"}
	suite.Require().NoError(suite.db.Create(&animal).Error)

	suite.Assert().Equal("Bella", animal.Name)
	suite.Assert().Equal("Dog", animal.Species)
	suite.Assert().Equal("Likes walks", animal.Note)
	suite.Assert().Equal(time.UTC, animal.CreatedAt.Location())
}

func (suite *TestSuiteStandard) TestAnimalNameEmpty() {
	err := suite.db.Create(&models.Animal{Name: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrAnimalNameEmpty)
}

func (suite *TestSuiteStandard) TestAnimalNotFound() {
	var animal models.Animal
	err := suite.db.First(&animal, "name = ?", "Nobody").Error

	suite.Require().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no animal matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.DisconnectDB()

	err := suite.db.Create(&models.Animal{Name: "Bella"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
