package models_test

import (
	"context"

	"github.com/fingoal/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestStoreGetMissing() {
	value, ok, err := suite.store.Get(context.Background(), models.KeyGoals)

	require.Nil(suite.T(), err)
	assert.False(suite.T(), ok)
	assert.Nil(suite.T(), value)
}

func (suite *TestSuiteStandard) TestStoreSetOverwrites() {
	ctx := context.Background()

	require.Nil(suite.T(), suite.store.Set(ctx, models.KeyDemoMode, []byte("false")))
	require.Nil(suite.T(), suite.store.Set(ctx, models.KeyDemoMode, []byte("true")))

	value, ok, err := suite.store.Get(ctx, models.KeyDemoMode)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "true", string(value))

	var count int64
	suite.db.Model(&models.Entry{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count, "overwriting a key must not create a second entry")
}

func (suite *TestSuiteStandard) TestStoreRemove() {
	ctx := context.Background()

	require.Nil(suite.T(), suite.store.Set(ctx, models.KeyAPIKey, []byte(`"sk-test"`)))
	require.Nil(suite.T(), suite.store.Remove(ctx, models.KeyAPIKey))

	_, ok, err := suite.store.Get(ctx, models.KeyAPIKey)
	require.Nil(suite.T(), err)
	assert.False(suite.T(), ok)

	// Removing again is fine
	assert.Nil(suite.T(), suite.store.Remove(ctx, models.KeyAPIKey))
}

func (suite *TestSuiteStandard) TestLoadSave() {
	ctx := context.Background()

	budget := models.Budget{Income: decimal.NewFromInt(3500), Expenses: decimal.NewFromInt(2800)}
	require.Nil(suite.T(), models.Save(ctx, suite.store, models.KeyBudget, budget))

	var loaded models.Budget
	ok, err := models.Load(ctx, suite.store, models.KeyBudget, &loaded)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), ok)
	assert.True(suite.T(), budget.Income.Equal(loaded.Income))
	assert.True(suite.T(), budget.Expenses.Equal(loaded.Expenses))
}

func (suite *TestSuiteStandard) TestLoadMissing() {
	loaded := models.Budget{Income: decimal.NewFromInt(1)}
	ok, err := models.Load(context.Background(), suite.store, models.KeyBudget, &loaded)

	require.Nil(suite.T(), err)
	assert.False(suite.T(), ok)
	assert.True(suite.T(), loaded.Income.Equal(decimal.NewFromInt(1)), "target must be untouched")
}

func (suite *TestSuiteStandard) TestLoadInvalidJSON() {
	ctx := context.Background()
	require.Nil(suite.T(), suite.store.Set(ctx, models.KeyBudget, []byte("{not json")))

	var loaded models.Budget
	_, err := models.Load(ctx, suite.store, models.KeyBudget, &loaded)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral, "corrupt values are server errors")
}

func (suite *TestSuiteStandard) TestSaveAll() {
	ctx := context.Background()
	require.Nil(suite.T(), suite.store.Set(ctx, models.KeyGoals, []byte("[]")))

	err := models.SaveAll(ctx, suite.store, map[string]any{
		models.KeyGoals:      []string{"goal"},
		models.KeyActivities: []string{"activity"},
		models.KeyBudget:     map[string]int{"income": 100},
	})
	require.Nil(suite.T(), err)

	for key, expected := range map[string]string{
		models.KeyGoals:      `["goal"]`,
		models.KeyActivities: `["activity"]`,
		models.KeyBudget:     `{"income":100}`,
	} {
		value, ok, err := suite.store.Get(ctx, key)
		require.Nil(suite.T(), err)
		assert.True(suite.T(), ok, key)
		assert.Equal(suite.T(), expected, string(value), key)
	}

	var count int64
	suite.db.Model(&models.Entry{}).Count(&count)
	assert.Equal(suite.T(), int64(3), count, "existing keys must be replaced")
}

func (suite *TestSuiteStandard) TestSetAllEmpty() {
	assert.Nil(suite.T(), suite.store.SetAll(context.Background(), nil))
}

func (suite *TestSuiteStandard) TestSaveAllUnencodable() {
	ctx := context.Background()

	err := models.SaveAll(ctx, suite.store, map[string]any{
		models.KeyGoals:  []string{"goal"},
		models.KeyBudget: func() {},
	})
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	_, ok, err := suite.store.Get(ctx, models.KeyGoals)
	require.Nil(suite.T(), err)
	assert.False(suite.T(), ok, "nothing must be written if one value cannot be encoded")
}

func (suite *TestSuiteStandard) TestSetAllClosedDatabase() {
	suite.CloseDB()

	err := suite.store.SetAll(context.Background(), map[string][]byte{models.KeyGoals: []byte("[]")})
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestStoreDatabaseClosed() {
	suite.CloseDB()

	_, _, err := suite.store.Get(context.Background(), models.KeyGoals)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)

	err = suite.store.Set(context.Background(), models.KeyGoals, []byte("[]"))
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
