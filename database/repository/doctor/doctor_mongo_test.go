package doctorRepo

import (
	"context"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoDoctorRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get all", func(mt *mtest.T) {
		repo := NewMongoDoctorRepoWithCollection(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "name", Value: "Dr. Who"}, {Key: "email", Value: "who@x.com"}, {Key: "specialty", Value: "Cleaning"}},
		))

		doctors, err := repo.GetAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, doctors, 1)
		assert.Equal(mt, "Cleaning", doctors[0].Specialty)
	})

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoDoctorRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		result, err := repo.Create(context.Background(), &models.Doctor{Name: "Dr. Who", Email: "who@x.com"})
		require.NoError(mt, err)
		assert.True(mt, result.Acknowledged)
		assert.NotNil(mt, result.InsertedID)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := NewMongoDoctorRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.Create(context.Background(), &models.Doctor{Name: "Dr. Who", Email: "who@x.com"})
		assert.ErrorIs(mt, err, ErrDuplicateDoctor)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoDoctorRepoWithCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		result, err := repo.DeleteByEmail(context.Background(), "who@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), result.DeletedCount)
	})
}
