package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestOrderLineModel_ProductForeignKey(t *testing.T) {
	s, err := schema.Parse(&OrderLineModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["Product"]
	require.True(t, ok)
	assert.Equal(t, schema.BelongsTo, rel.Type)
	assert.Equal(t, "products", rel.FieldSchema.Table)
	require.Len(t, rel.References, 1)
	assert.Equal(t, "product_id", rel.References[0].ForeignKey.DBName)
	assert.Equal(t, "id", rel.References[0].PrimaryKey.DBName)

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint)
	assert.Equal(t, "RESTRICT", constraint.OnDelete)
}

func TestOrderModel_LinesRelation(t *testing.T) {
	s, err := schema.Parse(&OrderModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["Lines"]
	require.True(t, ok)
	assert.Equal(t, schema.HasMany, rel.Type)
	assert.Equal(t, "order_details", rel.FieldSchema.Table)
}
