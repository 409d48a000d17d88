package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yoockh/portfolio-backend/config"
	"github.com/yoockh/portfolio-backend/internal/cache"
	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newSkillService(t *testing.T) SkillService {
	t.Helper()
	return NewSkillService(pgrepo.NewSkillRepo(newTestDB(t)), cache.NewNoopCache())
}

func TestSkillServiceCreateEchoesInput(t *testing.T) {
	svc := newSkillService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Skill{Name: "Go", Category: "Backend", Proficiency: 80})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, 80, created.Proficiency)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Proficiency, got.Proficiency)
}

func TestSkillServiceProficiencyBounds(t *testing.T) {
	svc := newSkillService(t)
	ctx := context.Background()

	for _, p := range []int{-1, 101} {
		_, err := svc.Create(ctx, &models.Skill{Name: "Go", Category: "Backend", Proficiency: p})
		require.Error(t, err)
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument), "proficiency %d", p)
	}

	for _, p := range []int{0, 100} {
		_, err := svc.Create(ctx, &models.Skill{Name: fmt.Sprintf("edge-%d", p), Category: "Backend", Proficiency: p})
		assert.NoError(t, err)
	}
}

func TestSkillServiceGetMissingIsNotFound(t *testing.T) {
	svc := newSkillService(t)

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
	assert.False(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestSkillServiceDeleteThenGet(t *testing.T) {
	svc := newSkillService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Skill{Name: "Go", Category: "Backend", Proficiency: 50})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	err = svc.Delete(ctx, created.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
