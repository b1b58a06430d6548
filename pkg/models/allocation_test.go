package models_test

import (
	"github.com/shelterfund/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAllocationDefaults() {
	animal := suite.createAnimal()

	a := models.Allocation{
		AnimalID:              animal.ID,
		Category:              "  Food ",
		TotalCost:             decimal.NewFromInt(10),
		DonationCoveredAmount: decimal.NewFromInt(10),
		Version:               1,
	}
	suite.Require().NoError(suite.db.Create(&a).Error)

	var loaded models.Allocation
	suite.Require().NoError(suite.db.First(&loaded, "id = ?", a.ID).Error)
	suite.Assert().Equal("Food", loaded.Category)
	suite.Assert().Equal(models.AllocationStatusDraft, loaded.Status)
	suite.Assert().True(loaded.TotalCost.Equal(decimal.NewFromInt(10)))
	suite.Assert().True(loaded.ExternalCoveredAmount.IsZero())
}

func (suite *TestSuiteStandard) TestAllocationSplitMismatch() {
	a := models.Allocation{
		TotalCost:             decimal.NewFromInt(100),
		DonationCoveredAmount: decimal.NewFromInt(60),
		ExternalCoveredAmount: decimal.NewFromInt(30),
	}

	err := a.BeforeSave(suite.db)
	suite.Assert().ErrorIs(err, models.ErrSplitMismatch)
}

func (suite *TestSuiteStandard) TestAllocationNegative() {
	a := models.Allocation{
		TotalCost:             decimal.NewFromInt(100),
		DonationCoveredAmount: decimal.NewFromInt(110),
		ExternalCoveredAmount: decimal.NewFromInt(-10),
	}

	err := a.BeforeSave(suite.db)
	suite.Assert().ErrorIs(err, models.ErrAllocationNegative)
}

func (suite *TestSuiteStandard) TestAllocationFundingStatus() {
	suite.Assert().Equal(models.FundingStatusFullyFunded, models.Allocation{}.FundingStatus())
	suite.Assert().Equal(models.FundingStatusPartiallyFunded, models.Allocation{ExternalCoveredAmount: decimal.NewFromFloat(0.01)}.FundingStatus())
}

func (suite *TestSuiteStandard) TestAllocationStatusValid() {
	suite.Assert().True(models.AllocationStatusDraft.Valid())
	suite.Assert().True(models.AllocationStatusVerified.Valid())
	suite.Assert().True(models.AllocationStatusPublished.Valid())
	suite.Assert().False(models.AllocationStatus("published").Valid())
	suite.Assert().False(models.AllocationStatus("").Valid())
}

func (suite *TestSuiteStandard) TestAllocationMissingAnimal() {
	a := models.Allocation{
		TotalCost:             decimal.NewFromInt(10),
		DonationCoveredAmount: decimal.NewFromInt(10),
	}

	err := suite.db.Create(&a).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
