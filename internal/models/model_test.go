package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pockettrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDefaultModelIDGenerated() {
	user := suite.createTestUser(models.User{})
	assert.NotEqual(suite.T(), uuid.Nil, user.ID)
}

func (suite *TestSuiteStandard) TestDefaultModelTimestampsUTC() {
	created := suite.createTestUser(models.User{})

	var user models.User
	require.NoError(suite.T(), models.DB.First(&user, created.ID).Error)

	assert.Equal(suite.T(), time.UTC, user.CreatedAt.Location())
	assert.Equal(suite.T(), time.UTC, user.UpdatedAt.Location())
}
