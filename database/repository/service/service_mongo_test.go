package serviceRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoServiceRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find all decodes slots in order", func(mt *mtest.T) {
		repo := NewMongoServiceRepoWithCollection(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "Cleaning"},
				{Key: "slots", Value: bson.A{"9:00", "10:00", "11:00"}},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "Whitening"},
				{Key: "slots", Value: bson.A{"13:00"}},
			},
		))

		services, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, services, 2)
		assert.Equal(mt, "Cleaning", services[0].Name)
		assert.Equal(mt, []string{"9:00", "10:00", "11:00"}, services[0].Slots)
		assert.Equal(mt, []string{"13:00"}, services[1].Slots)
	})

	mt.Run("find all on empty collection", func(mt *mtest.T) {
		repo := NewMongoServiceRepoWithCollection(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		services, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, services)
		assert.Empty(mt, services)
	})

	mt.Run("find names", func(mt *mtest.T) {
		repo := NewMongoServiceRepoWithCollection(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Cleaning"}},
		))

		names, err := repo.FindNames(context.Background())
		require.NoError(mt, err)
		require.Len(mt, names, 1)
		assert.Equal(mt, "Cleaning", names[0].Name)
	})

	mt.Run("find by name missing", func(mt *mtest.T) {
		repo := NewMongoServiceRepoWithCollection(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		service, err := repo.FindByName(context.Background(), "Unknown")
		require.NoError(mt, err)
		assert.Nil(mt, service)
	})

	mt.Run("find all surfaces server errors", func(mt *mtest.T) {
		repo := NewMongoServiceRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
		}))

		_, err := repo.FindAll(context.Background())
		assert.Error(mt, err)
	})
}
