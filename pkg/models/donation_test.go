package models_test

import (
	"time"

	"github.com/shelterfund/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDonationDate() {
	animal := suite.createAnimal()

	d := models.Donation{AnimalID: animal.ID, Amount: decimal.NewFromInt(5)}
	suite.Require().NoError(suite.db.Create(&d).Error)
	suite.Assert().False(d.Date.IsZero())
	suite.Assert().Equal(time.UTC, d.Date.Location())

	berlin, err := time.LoadLocation("Europe/Berlin")
	suite.Require().NoError(err)

	d = models.Donation{AnimalID: animal.ID, Amount: decimal.NewFromInt(5), Date: time.Date(2024, 3, 1, 12, 0, 0, 0, berlin)}
	suite.Require().NoError(suite.db.Create(&d).Error)
	suite.Assert().Equal(time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC), d.Date)
}

func (suite *TestSuiteStandard) TestDonationAmountNotPositive() {
	animal := suite.createAnimal()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		err := suite.db.Create(&models.Donation{AnimalID: animal.ID, Amount: amount}).Error
		suite.Assert().ErrorIs(err, models.ErrDonationAmountNotPositive, amount.String())
	}
}

func (suite *TestSuiteStandard) TestDonationMissingAnimal() {
	err := suite.db.Create(&models.Donation{Amount: decimal.NewFromInt(5)}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
